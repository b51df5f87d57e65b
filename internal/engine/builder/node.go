package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/meson" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			meson.BuildSystemNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			system, err := graft.Dep[ports.BuildSystem](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(runner, system), nil
		},
	})
}
