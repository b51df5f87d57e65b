package meson

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// probeTimeout bounds each tool's version query independently.
const probeTimeout = 10 * time.Second

// InstallHints returns the installation instructions surfaced when a tool
// probe fails.
func InstallHints() []string {
	return []string{
		"Please install meson and ninja:",
		"  pip install meson ninja",
		"or:",
		"  conda install meson ninja",
	}
}

var _ ports.Probe = (*Probe)(nil)

// Probe implements ports.Probe by querying both tools' versions.
type Probe struct {
	runner  ports.Runner
	timeout time.Duration
}

// NewProbe creates a Probe with the default per-tool timeout.
func NewProbe(runner ports.Runner) *Probe {
	return &Probe{runner: runner, timeout: probeTimeout}
}

// NewProbeWithTimeout creates a Probe with an explicit per-tool timeout.
func NewProbeWithTimeout(runner ports.Runner, timeout time.Duration) *Probe {
	return &Probe{runner: runner, timeout: timeout}
}

// Probe runs the two version queries concurrently, each under its own
// timeout. Missing executable, non-zero exit, and timeout all fold into one
// failure kind wrapping domain.ErrToolsMissing: downstream only needs the
// decision to abort, never a retry.
func (p *Probe) Probe(ctx context.Context, project *domain.Project, env domain.Environment) (domain.ToolVersions, error) {
	var versions domain.ToolVersions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := p.version(gctx, project.Tools.Configurator, env)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrToolsMissing, "configurator not found or not working"),
				"tool", project.Tools.Configurator)
		}
		versions.Configurator = v
		return nil
	})
	g.Go(func() error {
		v, err := p.version(gctx, project.Tools.Executor, env)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrToolsMissing, "executor not found or not working"),
				"tool", project.Tools.Executor)
		}
		versions.Executor = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ToolVersions{}, err
	}
	return versions, nil
}

func (p *Probe) version(ctx context.Context, tool string, env domain.Environment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.runner.Run(ctx, domain.Command{
		Argv: []string{tool, "--version"},
		Env:  env,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Output), nil
}
