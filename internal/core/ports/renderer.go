package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation,
// allowing the same event stream to drive either the status view or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called when a phase has been planned.
	// items: the queue items in planned order
	// deps: requirement map (item -> required items)
	// targets: the explicitly selected items, empty for a whole-product phase
	OnPlanEmit(items []string, deps map[string][]string, targets []string)

	// OnTaskStart is called when a span begins.
	// spanID: unique identifier for this span
	// parentID: spanID of the enclosing phase (empty for a phase)
	// name: job correlation id or phase title
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a job emits output.
	// data: raw log bytes (may contain partial lines or ANSI sequences)
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a span ends.
	// err: nil if successful, error otherwise
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
