// Package app implements the application layer for mason: the lifecycle
// entry points the CLI dispatches to.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// SkipNativeEnv disables the native module build when set to a non-empty
// value, matching the --skip-native flag. Documentation-only builds use it to
// keep the package importable without a working toolchain.
const SkipNativeEnv = "MASON_SKIP_NATIVE"

// HookOptions carries the per-invocation knobs of a lifecycle entry point.
type HookOptions struct {
	// Dest overrides the configured packaged-mode destination directory.
	Dest string
	// SkipNative bypasses the native build; configured hook delegates still
	// run.
	SkipNative bool
}

// App represents the main application logic. Each lifecycle method builds the
// native modules first and then delegates to the hook command configured for
// that entry point, mirroring how packaging front-ends chain into a native
// build step.
type App struct {
	configLoader ports.ConfigLoader
	orch         *orchestrator.Orchestrator
	runner       ports.Runner
	log          ports.Logger
	environ      []string
}

// New creates a new App instance operating on the ambient process
// environment.
func New(loader ports.ConfigLoader, orch *orchestrator.Orchestrator, runner ports.Runner, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		orch:         orch,
		runner:       runner,
		log:          log,
		environ:      os.Environ(),
	}
}

// WithEnviron replaces the ambient environment snapshot.
func (a *App) WithEnviron(vars []string) *App {
	a.environ = vars
	return a
}

// Build is the packaged-build entry point: native modules are staged into the
// destination directory, then the configured build hook runs.
func (a *App) Build(ctx context.Context, opts HookOptions) error {
	project, err := a.load()
	if err != nil {
		return err
	}

	target, err := packagedTarget(project, opts)
	if err != nil {
		return err
	}

	if err := a.buildNative(ctx, project, target, opts); err != nil {
		return err
	}
	return a.runHook(ctx, project, project.Hooks.Build)
}

// Develop is the editable-install entry point: native modules build in place,
// directly into the source tree, then the configured develop hook runs.
func (a *App) Develop(ctx context.Context, opts HookOptions) error {
	project, err := a.load()
	if err != nil {
		return err
	}

	target := domain.Target{Mode: domain.ModeInPlace}
	if err := a.buildNative(ctx, project, target, opts); err != nil {
		return err
	}
	return a.runHook(ctx, project, project.Hooks.Develop)
}

// Install is the direct-install entry point: a packaged build followed by the
// configured install hook.
func (a *App) Install(ctx context.Context, opts HookOptions) error {
	project, err := a.load()
	if err != nil {
		return err
	}

	target, err := packagedTarget(project, opts)
	if err != nil {
		return err
	}

	if err := a.buildNative(ctx, project, target, opts); err != nil {
		return err
	}
	return a.runHook(ctx, project, project.Hooks.Install)
}

// Probe verifies the build tools are usable and returns their versions.
func (a *App) Probe(ctx context.Context) (domain.ToolVersions, error) {
	project, err := a.load()
	if err != nil {
		return domain.ToolVersions{}, err
	}
	return a.orch.ProbeTools(ctx, project, domain.NewEnvironment(a.environ))
}

// Clean removes every discovered module's build-staging directory.
func (a *App) Clean(_ context.Context) error {
	project, err := a.load()
	if err != nil {
		return err
	}
	return a.orch.Clean(project)
}

func (a *App) load() (*domain.Project, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

func (a *App) buildNative(ctx context.Context, project *domain.Project, target domain.Target, opts HookOptions) error {
	if a.skipNative(opts) {
		a.log.Info("skipping native module build")
		return nil
	}

	_, err := a.orch.Run(ctx, project, target, domain.NewEnvironment(a.environ))
	return err
}

func (a *App) skipNative(opts HookOptions) bool {
	if opts.SkipNative {
		return true
	}
	value, ok := domain.NewEnvironment(a.environ).Lookup(SkipNativeEnv)
	return ok && value != ""
}

// runHook executes the delegate command from the package root with the
// ambient environment. A missing hook is a no-op.
func (a *App) runHook(ctx context.Context, project *domain.Project, hook []string) error {
	if len(hook) == 0 {
		return nil
	}

	a.log.Info("running hook: " + hook[0])
	result, err := a.runner.Run(ctx, domain.Command{
		Argv: hook,
		Dir:  project.Root,
		Env:  domain.NewEnvironment(a.environ),
	})
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "hook command failed"), "hook", hook[0]), "output", result.Output)
	}
	return nil
}

// packagedTarget derives the packaged-mode target: the flag override wins
// over the configured destination, and the result is always absolute because
// the build tool resolves install directories against its own working
// directory otherwise.
func packagedTarget(project *domain.Project, opts HookOptions) (domain.Target, error) {
	dest := opts.Dest
	if dest == "" {
		dest = project.Destination
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(project.Root, dest)
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		return domain.Target{}, zerr.With(zerr.Wrap(err, "failed to resolve destination"), "dest", dest)
	}
	return domain.Target{Mode: domain.ModePackaged, DestDir: abs}, nil
}
