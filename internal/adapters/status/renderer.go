package status

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pdctl/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the lanes view as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new status renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the phase plan.
func (r *Renderer) OnPlanEmit(items []string, deps map[string][]string, targets []string) {
	r.program.Send(MsgPlan{Items: items, Deps: deps, Targets: targets})
}

// OnTaskStart forwards span starts.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgSpanStart{SpanID: spanID, ParentID: parentID, Name: name, StartTime: startTime})
}

// OnTaskLog forwards job output.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.program.Send(MsgSpanLog{SpanID: spanID, Data: data})
}

// OnTaskComplete forwards span completion.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgSpanComplete{SpanID: spanID, EndTime: endTime, Err: err})
}
