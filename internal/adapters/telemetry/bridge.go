package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/pdctl/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a span processor forwarding span starts and ends to a Renderer.
type Bridge struct {
	mu       sync.RWMutex
	renderer ports.Renderer
}

// NewBridge creates a new Bridge. A nil renderer drops all events.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// SetRenderer replaces the renderer receiving events.
func (b *Bridge) SetRenderer(renderer ports.Renderer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderer = renderer
}

func (b *Bridge) current() ports.Renderer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.renderer
}

// OnStart reports the span with the id of its parent, if any.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	r := b.current()
	if r == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var parentID string
	if ps := trace.SpanFromContext(parent).SpanContext(); ps.IsValid() {
		parentID = ps.SpanID().String()
	}

	r.OnTaskStart(sc.SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports completion, turning an error status into an error.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	r := b.current()
	if r == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "job failed"
		}
		err = errors.New(desc)
	}

	r.OnTaskComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush is a no-op; events are delivered synchronously.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown is a no-op.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
