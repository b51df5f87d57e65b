package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// Toolchain shapes the environment every build-tool invocation runs with.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Resolve produces a fresh environment snapshot from base: compiler
	// selection variables defaulted (never overriding explicit user values)
	// and, when an active toolchain prefix is present, its bin and lib
	// directories prepended to the platform's search paths so the prefix's
	// tools win over system-wide equivalents.
	//
	// Resolve never fails; an absent prefix degrades to a no-op
	// augmentation.
	Resolve(base domain.Environment, compilers map[string]string) domain.Environment

	// CheckFortran probes the configured Fortran compiler. It is advisory:
	// when the compiler is absent it returns installation hints to log, and
	// the build proceeds regardless.
	CheckFortran(ctx context.Context, env domain.Environment) (version string, hints []string)
}
