package meson

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/shell"
	"go.trai.ch/mason/internal/core/ports"
)

const (
	// BuildSystemNodeID is the unique identifier for the BuildSystem Graft node.
	BuildSystemNodeID graft.ID = "adapter.meson.buildsystem"
	// ProbeNodeID is the unique identifier for the Probe Graft node.
	ProbeNodeID graft.ID = "adapter.meson.probe"
)

func init() {
	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        BuildSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildSystem, error) {
			return NewBuildSystem(), nil
		},
	})

	graft.Register(graft.Node[ports.Probe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Probe, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(runner), nil
		},
	})
}
