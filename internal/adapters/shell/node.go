package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// EditorNodeID is the unique identifier for the editor Graft node.
	EditorNodeID graft.ID = "adapter.editor"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(), nil
		},
	})

	graft.Register(graft.Node[ports.Editor]{
		ID:        EditorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Editor, error) {
			return NewEditor(), nil
		},
	})
}
