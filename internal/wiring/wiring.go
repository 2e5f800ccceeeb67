// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pdctl/internal/adapters/config"
	_ "go.trai.ch/pdctl/internal/adapters/fs"
	_ "go.trai.ch/pdctl/internal/adapters/index"
	_ "go.trai.ch/pdctl/internal/adapters/logger"
	_ "go.trai.ch/pdctl/internal/adapters/shell"
	_ "go.trai.ch/pdctl/internal/adapters/store"
	_ "go.trai.ch/pdctl/internal/adapters/telemetry"
	_ "go.trai.ch/pdctl/internal/adapters/vcs"
	_ "go.trai.ch/pdctl/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/pdctl/internal/app"
	_ "go.trai.ch/pdctl/internal/engine/dispatcher"
	_ "go.trai.ch/pdctl/internal/engine/planner"
)
