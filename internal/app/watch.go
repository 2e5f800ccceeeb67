package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/pdctl/internal/adapters/watcher"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	RunOptions
	// Window is the quiet period after the last change before a re-run.
	Window time.Duration
}

// Watch runs the command once and again whenever files below the product change.
// Run failures are logged; watching continues until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, ws.Product); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	window := opts.Window
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case trigger <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.runOnce(ctx, opts.RunOptions)
	a.logger.Info(fmt.Sprintf("Watching %s for changes.", ws.Product))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			a.logger.Info(fmt.Sprintf("%d %s changed.", len(paths), plural(len(paths), "file", "files")))
			a.runOnce(ctx, opts.RunOptions)
		}
	}
}

func (a *App) runOnce(ctx context.Context, opts RunOptions) {
	if _, err := a.Run(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}
