package ports

import "go.trai.ch/mason/internal/core/domain"

// Scanner discovers buildable modules beneath a package root.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Discover checks the project's candidate directories, in declared
	// order, for a build description file and returns a descriptor for each
	// hit. Candidates without one are silently skipped; zero modules is not
	// an error. The returned order is stable across runs on an unchanged
	// tree.
	Discover(project *domain.Project) ([]domain.Module, error)
}
