package ports

import "go.trai.ch/mason/internal/core/domain"

// BuildSystem assembles the external build-tool command lines. It is the
// single place argument strings are put together, so substituting an
// alternative backend touches one adapter.
//
//go:generate go run go.uber.org/mock/mockgen -source=buildsystem.go -destination=mocks/mock_buildsystem.go -package=mocks
type BuildSystem interface {
	// Setup returns the configure invocation for a fresh build-staging
	// directory: release build type, LTO enabled, and, for packaged targets
	// with a known destination, the pure and platform library directories
	// redirected into the target.
	Setup(project *domain.Project, module domain.Module, target domain.Target, env domain.Environment) domain.Command

	// Compile returns the executor invocation against the staging directory.
	Compile(project *domain.Project, module domain.Module, env domain.Environment) domain.Command

	// Install returns the incremental install invocation against the staging
	// directory. Only packaged targets ever execute it.
	Install(project *domain.Project, module domain.Module, env domain.Environment) domain.Command

	// StagingDir returns the absolute path of the module's build-staging
	// directory, safe to delete and regenerate.
	StagingDir(project *domain.Project, module domain.Module) string
}
