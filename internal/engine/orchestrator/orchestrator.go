// Package orchestrator coordinates a full native build run: toolchain
// resolution, tool probing, module discovery, and the sequential per-module
// build pipeline.
package orchestrator

import (
	"context"
	"errors"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/builder"
	"go.trai.ch/zerr"
)

// Orchestrator drives one build run end to end. Modules build strictly in
// discovery order; the first failing module terminates the run.
type Orchestrator struct {
	toolchain ports.Toolchain
	probe     ports.Probe
	scanner   ports.Scanner
	digester  ports.Digester
	builder   *builder.Builder
	telemetry ports.Telemetry
	log       ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	toolchain ports.Toolchain,
	probe ports.Probe,
	scanner ports.Scanner,
	digester ports.Digester,
	b *builder.Builder,
	telemetry ports.Telemetry,
	log ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		toolchain: toolchain,
		probe:     probe,
		scanner:   scanner,
		digester:  digester,
		builder:   b,
		telemetry: telemetry,
		log:       log,
	}
}

// Run builds every discovered module of the project against the target.
//
// The toolchain environment is resolved once from baseEnv and shared,
// unmodified, by every external invocation of the run. The tool probe runs
// once before any module; when it fails, no module build is attempted and
// the returned error wraps domain.ErrToolsMissing.
//
// On a module failure the run stops immediately: the returned slice holds
// one outcome per module attempted so far, and the error wraps
// domain.ErrBuildFailed with the failing module and phase attached as
// metadata. A project with zero native modules is a successful no-op.
func (o *Orchestrator) Run(ctx context.Context, project *domain.Project, target domain.Target, baseEnv domain.Environment) ([]domain.Outcome, error) {
	env := o.toolchain.Resolve(baseEnv, project.Compilers)

	if version, hints := o.toolchain.CheckFortran(ctx, env); version == "" {
		for _, hint := range hints {
			o.log.Warn(hint)
		}
	} else {
		o.log.Info("found fortran compiler: " + version)
	}

	versions, err := o.probe.Probe(ctx, project, env)
	if err != nil {
		return nil, err
	}
	o.log.Info("found " + project.Tools.Configurator + " version: " + versions.Configurator)
	o.log.Info("found " + project.Tools.Executor + " version: " + versions.Executor)

	modules, err := o.scanner.Discover(project)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		o.log.Info("no native modules found, nothing to build")
		return nil, nil
	}

	outcomes := make([]domain.Outcome, 0, len(modules))
	for _, module := range modules {
		outcome, err := o.buildModule(ctx, project, module, target, env)
		if err != nil {
			return outcomes, err
		}

		outcomes = append(outcomes, outcome)
		if outcome.Failed() {
			err := zerr.Wrap(domain.ErrBuildFailed, outcome.Diagnostic)
			err = zerr.With(err, "module", outcome.Module.Name)
			err = zerr.With(err, "phase", outcome.Status.Phase())
			err = zerr.With(err, "exit_code", outcome.ExitCode)
			return outcomes, err
		}
	}
	return outcomes, nil
}

// Clean removes every discovered module's staging directory.
func (o *Orchestrator) Clean(project *domain.Project) error {
	modules, err := o.scanner.Discover(project)
	if err != nil {
		return err
	}

	var errs []error
	for _, module := range modules {
		if err := o.builder.Clean(project, module); err != nil {
			errs = append(errs, err)
			continue
		}
		o.log.Info("cleaned " + module.Name)
	}
	return errors.Join(errs...)
}

// ProbeTools surfaces the tool probe directly, after toolchain resolution.
func (o *Orchestrator) ProbeTools(ctx context.Context, project *domain.Project, baseEnv domain.Environment) (domain.ToolVersions, error) {
	env := o.toolchain.Resolve(baseEnv, project.Compilers)
	return o.probe.Probe(ctx, project, env)
}

func (o *Orchestrator) buildModule(ctx context.Context, project *domain.Project, module domain.Module, target domain.Target, env domain.Environment) (domain.Outcome, error) {
	o.log.Info("building module " + module.Name)

	vctx, vertex := o.telemetry.Record(ctx, module.Name)
	outcome, err := o.builder.Build(vctx, project, module, target, env)
	if err != nil {
		vertex.Complete(err)
		return domain.Outcome{}, err
	}

	if outcome.Failed() {
		vertex.Complete(errors.New(outcome.Status.Phase() + " failed"))
		return outcome, nil
	}

	if digest, err := o.digestArtifacts(project, module, target); err == nil {
		outcome.ArtifactDigest = digest
	} else {
		o.log.Warn("artifact digest unavailable for " + module.Name + ": " + err.Error())
	}
	vertex.Complete(nil)
	return outcome, nil
}

// digestArtifacts fingerprints what the build produced: the destination tree
// for packaged targets, the staging tree otherwise.
func (o *Orchestrator) digestArtifacts(project *domain.Project, module domain.Module, target domain.Target) (string, error) {
	root := o.builder.StagingDir(project, module)
	if target.Installs() {
		root = target.DestDir
	}
	return o.digester.DigestTree(root)
}
