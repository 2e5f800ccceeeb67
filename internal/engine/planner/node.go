package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/adapters/index"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdctl/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/pdctl/internal/engine/dispatcher"
)

// NodeID is the unique identifier for the intention loop Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*IntentionLoop]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			index.NodeID,
			dispatcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*IntentionLoop, error) {
			loader, err := graft.Dep[ports.IndexLoader](ctx)
			if err != nil {
				return nil, err
			}

			d, err := graft.Dep[ports.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewIntentionLoop(loader, d, log), nil
		},
	})
}
