// Package dispatcher drains a phase's queue through a bounded number of concurrent lanes.
package dispatcher

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher runs the jobs synthesized from a drain queue.
type Dispatcher struct {
	executor ports.Executor
	tracer   ports.Tracer
	now      func() time.Time
}

// NewDispatcher creates a new Dispatcher with the given dependencies.
func NewDispatcher(executor ports.Executor, tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		executor: executor,
		tracer:   tracer,
		now:      time.Now,
	}
}

// Dispatch drains phase.Queue until it is terminal and every started job has completed.
//
// Failed jobs are recorded in the summary. An error is returned only when the phase
// cannot complete: a synthesis failure, a halt under PolicyHalt, cancellation, or a
// queue that can make no progress.
func (d *Dispatcher) Dispatch(ctx context.Context, phase ports.Phase) (domain.PhaseSummary, error) {
	lanes := max(phase.Lanes, 1)

	d.tracer.EmitPlan(ctx, phase.Plan.Items, phase.Plan.Deps, phase.Plan.Targets)

	ctx, span := d.tracer.Start(ctx, phase.Title,
		ports.WithAttribute("pdctl.group", phase.Group),
		ports.WithAttribute("pdctl.lanes", lanes),
	)
	defer span.End()

	state := &runState{
		d:         d,
		ctx:       ctx,
		phase:     phase,
		lanes:     lanes,
		remaining: make(map[string]int),
		resultsCh: make(chan result, lanes),
		summary: domain.PhaseSummary{
			Title:   phase.Title,
			Group:   phase.Group,
			Tags:    phase.Tags,
			Started: d.now(),
		},
	}

	err := state.runExecutionLoop()
	state.summary.Items, _ = phase.Queue.Status()
	state.summary.Finished = d.now()
	if err != nil {
		span.RecordError(err)
	}
	return state.summary, err
}

type job struct {
	item       string
	descriptor domain.JobDescriptor
}

type result struct {
	item    string
	outcome domain.JobOutcome
}

type runState struct {
	d         *Dispatcher
	ctx       context.Context
	phase     ports.Phase
	lanes     int
	pending   []job
	remaining map[string]int
	active    int
	resultsCh chan result
	errs      error
	stopped   bool
	summary   domain.PhaseSummary
}

func (state *runState) runExecutionLoop() error {
	done := state.ctx.Done()

	for {
		state.fill()
		state.schedule()

		if state.active == 0 {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-done:
			// Running jobs observe the cancelled context; keep collecting their results.
			done = nil
			state.stop()
		}
	}

	if err := state.ctx.Err(); err != nil {
		state.stop()
		state.errs = errors.Join(state.errs, err)
		return state.errs
	}

	if !state.stopped && len(state.pending) == 0 && !state.phase.Queue.Terminal() {
		consumed, total := state.phase.Queue.Status()
		state.errs = errors.Join(state.errs, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrQueueStalled, "no item can be taken"),
			"consumed", consumed), "total", total))
	}

	return state.errs
}

// fill tops up the pending jobs from the queue until every lane has work.
func (state *runState) fill() {
	for !state.stopped && state.ctx.Err() == nil {
		want := state.lanes - state.active - len(state.pending)
		if want <= 0 {
			return
		}

		items := state.phase.Queue.Take(want)
		if len(items) == 0 {
			return
		}

		for _, item := range items {
			if err := state.synthesize(item); err != nil {
				state.errs = errors.Join(state.errs, err)
				state.stop()
				return
			}
		}
	}
}

func (state *runState) synthesize(item string) error {
	jobs, err := state.phase.Synthesizer.Synthesize(item)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrSynthesisFailed, err), "cannot plan jobs"), "item", item)
	}

	n := 0
	for descriptor := range jobs {
		state.pending = append(state.pending, job{item: item, descriptor: descriptor})
		n++
	}

	if n == 0 {
		state.phase.Queue.Finish(item)
		return nil
	}
	state.remaining[item] = n
	return nil
}

func (state *runState) schedule() {
	for len(state.pending) > 0 && state.active < state.lanes && !state.stopped && state.ctx.Err() == nil {
		j := state.pending[0]
		state.pending = state.pending[1:]

		state.active++
		go state.execute(j)
	}
}

func (state *runState) execute(j job) {
	// The span is ended before the result is sent so renderers observe completion
	// before the phase can finish.
	res := func() result {
		ctx, span := state.d.tracer.Start(state.ctx, j.descriptor.CorrelationID,
			ports.WithAttribute("pdctl.item", j.item),
		)
		defer span.End()

		start := state.d.now()
		err := state.d.executor.Execute(ctx, j.descriptor.Invocation, span, span)
		outcome := domain.JobOutcome{
			CorrelationID: j.descriptor.CorrelationID,
			Item:          j.item,
			Status:        domain.JobPassed,
			Duration:      state.d.now().Sub(start),
		}
		if err != nil {
			span.RecordError(err)
			outcome.Status = domain.JobFailed
			outcome.ExitCode = exitCode(err)
			outcome.Error = err.Error()
			if ctx.Err() != nil {
				outcome.Status = domain.JobCancelled
			}
		}
		return result{item: j.item, outcome: outcome}
	}()

	state.resultsCh <- res
}

func (state *runState) handleResult(res result) {
	state.active--
	state.summary.Jobs = append(state.summary.Jobs, res.outcome)

	state.remaining[res.item]--
	if state.remaining[res.item] == 0 {
		delete(state.remaining, res.item)
		state.phase.Queue.Finish(res.item)
	}

	if res.outcome.Status == domain.JobFailed && state.phase.Policy == ports.PolicyHalt && !state.stopped {
		state.summary.Halted = true
		state.errs = errors.Join(state.errs, zerr.With(
			zerr.Wrap(domain.ErrPhaseHalted, "job failed"), "job", res.outcome.CorrelationID))
		state.stop()
	}
}

// stop cancels every job that has not been started.
func (state *runState) stop() {
	state.stopped = true
	for _, j := range state.pending {
		state.summary.Jobs = append(state.summary.Jobs, domain.JobOutcome{
			CorrelationID: j.descriptor.CorrelationID,
			Item:          j.item,
			Status:        domain.JobCancelled,
		})
	}
	state.pending = nil
}

func exitCode(err error) int {
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			return -1
		}
		if code, ok := zErr.Metadata()["exit_code"].(int); ok {
			return code
		}
		err = zErr.Unwrap()
	}
	return -1
}
