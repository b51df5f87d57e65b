// Package toolchain shapes the build environment: active-prefix search paths
// and compiler selection defaults.
package toolchain

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

// PrefixVar is the environment variable naming the active toolchain prefix.
const PrefixVar = "CONDA_PREFIX"

// checkTimeout bounds the advisory Fortran compiler probe.
const checkTimeout = 10 * time.Second

var _ ports.Toolchain = (*Resolver)(nil)

// Resolver implements ports.Toolchain.
type Resolver struct {
	runner   ports.Runner
	platform string
}

// NewResolver creates a Resolver for the host platform.
func NewResolver(runner ports.Runner) *Resolver {
	return &Resolver{runner: runner, platform: runtime.GOOS}
}

// NewResolverFor creates a Resolver for an explicit platform ("linux",
// "darwin", "windows"). Used by tests; production wiring uses NewResolver.
func NewResolverFor(runner ports.Runner, platform string) *Resolver {
	return &Resolver{runner: runner, platform: platform}
}

// Resolve produces a fresh snapshot from base. Compiler variables are
// defaulted only when unset; an explicit user choice is never overridden.
// When an active prefix is set, its bin directory (and Library/bin on
// Windows) is prepended to PATH and its lib directory to the platform's
// shared-library search variable, so prefix-bundled tools take priority over
// system-wide equivalents. Resolve never fails: no prefix means no
// augmentation.
func (r *Resolver) Resolve(base domain.Environment, compilers map[string]string) domain.Environment {
	env := base

	keys := make([]string, 0, len(compilers))
	for k := range compilers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := env.Lookup(k); !ok {
			env = env.With(k, compilers[k])
		}
	}

	prefix, ok := env.Lookup(PrefixVar)
	if !ok || prefix == "" {
		return env
	}

	sep := ":"
	if r.platform == "windows" {
		sep = ";"
	}

	if r.platform == "windows" {
		env = env.Prepend("PATH", sep,
			filepath.Join(prefix, "bin"),
			filepath.Join(prefix, "Library", "bin"))
		return env
	}

	env = env.Prepend("PATH", sep, filepath.Join(prefix, "bin"))
	if v := r.libraryPathVar(); v != "" {
		env = env.Prepend(v, sep, filepath.Join(prefix, "lib"))
	}
	return env
}

// libraryPathVar names the platform's dynamic-library search variable.
func (r *Resolver) libraryPathVar() string {
	switch r.platform {
	case "linux":
		return "LD_LIBRARY_PATH"
	case "darwin":
		return "DYLD_LIBRARY_PATH"
	default:
		return ""
	}
}

// CheckFortran probes the Fortran compiler named by FC (gfortran when FC is
// unset). The check is advisory: a missing compiler yields installation hints
// for the log, never an error, since meson surfaces the authoritative failure
// later.
func (r *Resolver) CheckFortran(ctx context.Context, env domain.Environment) (string, []string) {
	fc, ok := env.Lookup("FC")
	if !ok || fc == "" {
		fc = "gfortran"
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	res, err := r.runner.Run(ctx, domain.Command{
		Argv: []string{fc, "--version"},
		Env:  env,
	})
	if err != nil {
		return "", []string{
			fc + " not found; Fortran modules may not build correctly",
			"install it: Linux: apt-get install gfortran; macOS: brew install gcc; Windows: conda install m2w64-toolchain",
		}
	}

	version := res.Output
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return strings.TrimSpace(version), nil
}
