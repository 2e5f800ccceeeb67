package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/adapters/fs"
	"go.trai.ch/pdctl/internal/adapters/logger"
	"go.trai.ch/pdctl/internal/core/ports"
)

// NodeID is the unique identifier for the index loader Graft node.
const NodeID graft.ID = "adapter.index"

func init() {
	graft.Register(graft.Node[ports.IndexLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexLoader, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(walker, log), nil
		},
	})
}
