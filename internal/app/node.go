package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/index"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/vcs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/pdctl/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			index.NodeID,
			planner.NodeID,
			telemetry.OTelNodeID,
			store.NodeID,
			fs.HasherNodeID,
			vcs.NodeID,
			shell.EditorNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	indexLoader, err := graft.Dep[ports.IndexLoader](ctx)
	if err != nil {
		return nil, err
	}

	loop, err := graft.Dep[*planner.IntentionLoop](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	reports, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	revisions, err := graft.Dep[ports.VCS](ctx)
	if err != nil {
		return nil, err
	}

	editor, err := graft.Dep[ports.Editor](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, indexLoader, loop, tracer, reports, hasher, revisions, editor, w, log), nil
}
