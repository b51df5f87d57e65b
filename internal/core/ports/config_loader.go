package ports

import "go.trai.ch/mason/internal/core/domain"

// ConfigLoader loads the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the masonfile from the given working directory and returns
	// the validated project.
	Load(cwd string) (*domain.Project, error)
}
