package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdctl/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdctl/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[ports.Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Dispatcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewDispatcher(executor, tracer), nil
		},
	})
}
