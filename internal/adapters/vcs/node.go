package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/core/ports"
)

// NodeID is the unique identifier for the VCS Graft node.
const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VCS, error) {
			return NewGit(), nil
		},
	})
}
