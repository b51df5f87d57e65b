// Package meson adapts the meson/ninja build system: it is the single place
// the external tools' command lines are assembled.
package meson

import (
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

var _ ports.BuildSystem = (*BuildSystem)(nil)

// BuildSystem implements ports.BuildSystem for meson configures/installs and
// ninja compiles.
type BuildSystem struct{}

// NewBuildSystem creates a new BuildSystem.
func NewBuildSystem() *BuildSystem {
	return &BuildSystem{}
}

// Setup assembles the configure invocation. The staging directory name is
// passed relative to the module source, which is also the working directory:
// meson resolves "build" and "." against it. Release build type and LTO are
// always requested; packaged targets with a destination additionally redirect
// both the pure and platform library install directories there, so artifacts
// land inside the packaging output instead of a system location.
func (b *BuildSystem) Setup(project *domain.Project, module domain.Module, target domain.Target, env domain.Environment) domain.Command {
	argv := []string{
		project.Tools.Configurator, "setup",
		project.Staging, ".",
		"--buildtype=release",
		"-Db_lto=true",
	}
	if target.Installs() {
		argv = append(argv,
			"--python.purelibdir="+target.DestDir,
			"--python.platlibdir="+target.DestDir,
		)
	}
	return domain.Command{Argv: argv, Dir: module.SourceDir, Env: env}
}

// Compile assembles the ninja invocation against the staging directory.
func (b *BuildSystem) Compile(project *domain.Project, module domain.Module, env domain.Environment) domain.Command {
	argv := []string{project.Tools.Executor, "-C", project.Staging}
	return domain.Command{Argv: argv, Dir: module.SourceDir, Env: env}
}

// Install assembles the incremental install invocation.
func (b *BuildSystem) Install(project *domain.Project, module domain.Module, env domain.Environment) domain.Command {
	argv := []string{project.Tools.Configurator, "install", "-C", project.Staging, "--only-changed"}
	return domain.Command{Argv: argv, Dir: module.SourceDir, Env: env}
}

// StagingDir returns the absolute path of the module's build-staging
// directory.
func (b *BuildSystem) StagingDir(project *domain.Project, module domain.Module) string {
	return filepath.Join(module.SourceDir, project.Staging)
}
