package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/meson"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/toolchain"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/builder"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			meson.ProbeNodeID,
			fs.ScannerNodeID,
			fs.DigesterNodeID,
			builder.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.Probe](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			b, err := graft.Dep[*builder.Builder](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(tc, probe, scanner, digester, b, telemetry, log), nil
		},
	})
}
