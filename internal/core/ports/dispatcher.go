package ports

import (
	"context"
	"iter"

	"go.trai.ch/pdctl/internal/core/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// DrainQueue is a consumable sequence of work items with completion accounting.
// A queue is owned by a single phase and is never shared.
type DrainQueue interface {
	// Take removes and returns up to n available items from the front.
	Take(n int) []string
	// Finish marks items as completed, releasing anything that waited on them.
	Finish(items ...string)
	// Terminal reports whether no items remain to be taken.
	Terminal() bool
	// Status returns how many items were taken out of the total.
	Status() (consumed, total int)
}

// Synthesizer turns a drained item into the jobs to run for it.
type Synthesizer interface {
	// Synthesize returns the jobs for item. Lookup failures are returned before any job is produced.
	Synthesize(item string) (iter.Seq[domain.JobDescriptor], error)
}

// SynthesizerFunc adapts a function to the Synthesizer interface.
type SynthesizerFunc func(item string) (iter.Seq[domain.JobDescriptor], error)

// Synthesize calls f(item).
func (f SynthesizerFunc) Synthesize(item string) (iter.Seq[domain.JobDescriptor], error) {
	return f(item)
}

// FailurePolicy decides what a dispatcher does when a job fails.
type FailurePolicy uint8

const (
	// PolicyContinue records the failure and keeps draining the queue.
	PolicyContinue FailurePolicy = iota
	// PolicyHalt stops taking items after the first failure and waits for running jobs.
	PolicyHalt
)

// Plan describes the items a phase expects to drain, for rendering.
type Plan struct {
	Items   []string
	Deps    map[string][]string
	Targets []string
}

// Phase is everything the dispatcher needs to drain one planning phase.
type Phase struct {
	Title       string
	Group       string
	Tags        []string
	Lanes       int
	Policy      FailurePolicy
	Plan        Plan
	Queue       DrainQueue
	Synthesizer Synthesizer
}

// Dispatcher drains a phase's queue through bounded concurrent lanes.
type Dispatcher interface {
	// Dispatch blocks until the queue is terminal and every started job has completed.
	Dispatch(ctx context.Context, phase Phase) (domain.PhaseSummary, error)
}
