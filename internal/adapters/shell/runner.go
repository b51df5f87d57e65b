// Package shell provides the external-process runner adapter.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd synchronously. The process receives exactly cmd.Env,
// never the ambient environment, and runs in cmd.Dir. Combined
// stdout/stderr is captured verbatim into the result.
//
// The executable is resolved against cmd.Env's PATH, not the caller's, so a
// toolchain prefix prepended by the resolver wins over system-wide tools.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ExecResult, error) {
	if len(cmd.Argv) == 0 {
		return domain.ExecResult{ExitCode: -1}, zerr.New("empty command")
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]
	env := cmd.Env.Slice()

	// Bare tool names resolve strictly against cmd.Env's PATH; a miss is an
	// error, never a fallback to the ambient PATH. Names carrying a path are
	// used as given.
	executable := name
	if filepath.Base(name) == name {
		lp, err := lookPath(name, cmd.Env)
		if err != nil {
			return domain.ExecResult{ExitCode: -1},
				zerr.With(zerr.Wrap(err, "executable not found in PATH"), "tool", name)
		}
		executable = lp
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // argv assembled by the build system adapter
	// Preserve the tool name as invoked in Args[0] for diagnostics.
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	c.Dir = cmd.Dir
	c.Env = env

	var buf bytes.Buffer
	c.Stdout = &buf
	c.Stderr = &buf

	r.logger.Info("running " + strings.Join(cmd.Argv, " ") + " (cwd=" + cmd.Dir + ")")

	err := c.Run()
	result := domain.ExecResult{Output: buf.String(), ExitCode: 0}
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		result.ExitCode = exitCode
		return result, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return result, nil
}

// lookPath searches for an executable through the PATH of the explicit
// environment rather than the ambient one.
func lookPath(file string, env domain.Environment) (string, error) {
	path, ok := env.Lookup("PATH")
	if !ok || path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: an empty path element means ".".
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func isExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0o111 != 0
}
