// Package builder implements the build pipeline for a single module:
// configure, compile, and optionally install, against a clean staging
// directory.
package builder

import (
	"context"
	"os"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs every build phase of one module and reports the terminal
// outcome. It never retries: the first non-zero exit ends the pipeline.
type Builder struct {
	runner ports.Runner
	system ports.BuildSystem
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.Runner, system ports.BuildSystem) *Builder {
	return &Builder{
		runner: runner,
		system: system,
	}
}

// Build runs the full pipeline for one module. Every attempt starts from a
// clean slate: a leftover staging directory is removed before configuring so
// stale toolchain state never leaks into the new build.
//
// The returned Outcome is the single record of the attempt. The error is
// non-nil only for infrastructure failures (staging directory handling);
// tool failures are reported through the Outcome alone.
func (b *Builder) Build(ctx context.Context, project *domain.Project, module domain.Module, target domain.Target, env domain.Environment) (domain.Outcome, error) {
	staging := b.system.StagingDir(project, module)
	if err := resetStaging(staging); err != nil {
		return domain.Outcome{}, zerr.With(err, "module", module.Name)
	}

	result, err := b.run(ctx, b.system.Setup(project, module, target, env))
	if err != nil {
		return outcome(module, domain.StatusConfigureFailed, result), nil
	}

	result, err = b.run(ctx, b.system.Compile(project, module, env))
	if err != nil {
		return outcome(module, domain.StatusCompileFailed, result), nil
	}

	if target.Installs() {
		result, err = b.run(ctx, b.system.Install(project, module, env))
		if err != nil {
			return outcome(module, domain.StatusInstallFailed, result), nil
		}
	}

	return outcome(module, domain.StatusSuccess, result), nil
}

// StagingDir returns the module's build-staging directory.
func (b *Builder) StagingDir(project *domain.Project, module domain.Module) string {
	return b.system.StagingDir(project, module)
}

// Clean removes the module's staging directory. Removing a directory that
// does not exist is a no-op.
func (b *Builder) Clean(project *domain.Project, module domain.Module) error {
	staging := b.system.StagingDir(project, module)
	if err := os.RemoveAll(staging); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "module", module.Name), "staging", staging)
	}
	return nil
}

func (b *Builder) run(ctx context.Context, cmd domain.Command) (domain.ExecResult, error) {
	result, err := b.runner.Run(ctx, cmd)
	if vertex := ports.VertexFromContext(ctx); vertex != nil {
		_, _ = vertex.Stdout().Write([]byte(result.Output))
	}
	return result, err
}

func resetStaging(staging string) error {
	if err := os.RemoveAll(staging); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "staging", staging)
	}
	if err := os.MkdirAll(staging, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staging directory"), "staging", staging)
	}
	return nil
}

func outcome(module domain.Module, status domain.BuildStatus, result domain.ExecResult) domain.Outcome {
	return domain.Outcome{
		Module:     module,
		Status:     status,
		Diagnostic: result.Output,
		ExitCode:   result.ExitCode,
	}
}
