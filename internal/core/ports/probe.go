package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// Probe verifies that the external build tools are present and functioning.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type Probe interface {
	// Probe queries the version of both build tools, each bounded by its own
	// timeout. It succeeds only if both queries exit zero in time; any
	// failure (missing executable, non-zero exit, timeout) is folded into an
	// error wrapping domain.ErrToolsMissing with a reason naming the tool.
	//
	// Tool absence is a fatal precondition, not a transient error: callers
	// must not retry.
	Probe(ctx context.Context, project *domain.Project, env domain.Environment) (domain.ToolVersions, error)
}
