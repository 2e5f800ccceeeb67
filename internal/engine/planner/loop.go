package planner

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request is a single planning command.
type Request struct {
	Command    domain.CommandKind
	Intentions []domain.Intention
	Rebuild    domain.RebuildLevel
	Lanes      int
	Policy     ports.FailurePolicy
	// Args are the command's positional arguments. The first is the selector; the rest
	// are test keywords or trailing build arguments.
	Args      []string
	Workspace *domain.Workspace
}

func (r Request) split() (string, []string) {
	if len(r.Args) == 0 {
		return "", nil
	}
	return r.Args[0], r.Args[1:]
}

// IntentionLoop drives the phases of a command one after another.
type IntentionLoop struct {
	loader     ports.IndexLoader
	dispatcher ports.Dispatcher
	logger     ports.Logger
}

// NewIntentionLoop creates a new IntentionLoop with the given dependencies.
func NewIntentionLoop(loader ports.IndexLoader, dispatcher ports.Dispatcher, logger ports.Logger) *IntentionLoop {
	return &IntentionLoop{
		loader:     loader,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run loads the product index, resolves the selection once and dispatches every phase in
// order. Each phase drains a fresh queue. The first phase error stops the loop; the
// summaries recorded so far are returned with it.
func (l *IntentionLoop) Run(ctx context.Context, req Request) (domain.RunSummary, error) {
	var summary domain.RunSummary
	ws := req.Workspace

	index, err := l.loader.Load(ctx, ws.Product)
	if err != nil {
		return summary, zerr.With(zerr.Wrap(errors.Join(domain.ErrIndexLoadFailed, err), "cannot load product index"),
			"product", ws.Product)
	}

	token, rest := req.split()
	selection, err := Resolve(token, index)
	if err != nil {
		return summary, err
	}

	base := domain.PhaseContext{
		Command:     req.Command,
		Rebuild:     req.Rebuild,
		Lanes:       req.Lanes,
		ProductRoot: ws.Product,
		ContextPath: domain.ContextPath(ws.Route),
		CachePath:   domain.CachePath(ws.Route),
		Inherit:     ws.Config.Inherit,
	}

	for _, intentions := range req.Command.Phases(req.Intentions) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		pc := base.WithIntentions(intentions)
		q, err := selection.Queue(index)
		if err != nil {
			return summary, err
		}

		phase := ports.Phase{
			Title:       pc.Title(),
			Group:       req.Command.Group(),
			Tags:        pc.Tags(),
			Lanes:       l.lanes(req, selection),
			Policy:      req.Policy,
			Plan:        selection.Plan(index),
			Queue:       q,
			Synthesizer: l.synthesizer(req, pc, index, rest),
		}

		if req.Command == domain.KindTest {
			l.logger.Info(fmt.Sprintf("Testing %s.", pc.Label()))
		}

		result, err := l.dispatcher.Dispatch(ctx, phase)
		summary.Record(result)
		l.logger.Info(result.Synopsis())
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// lanes narrows build phases to the number of explicitly selected projects.
func (l *IntentionLoop) lanes(req Request, s Selection) int {
	lanes := max(req.Lanes, 1)
	if req.Command != domain.KindTest && !s.Whole && len(s.Projects) > 0 {
		lanes = min(lanes, len(s.Projects))
	}
	return lanes
}

func (l *IntentionLoop) synthesizer(
	req Request,
	pc domain.PhaseContext,
	index ports.ProjectIndex,
	rest []string,
) ports.Synthesizer {
	cfg := req.Workspace.Config
	if req.Command == domain.KindTest {
		return &TestSynthesizer{Index: index, Phase: pc, Settings: cfg.Test, Keywords: rest}
	}
	return &BuildSynthesizer{Index: index, Phase: pc, Settings: cfg.Build, Args: rest}
}
