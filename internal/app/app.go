// Package app implements the application layer for pdctl.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pdctl/internal/adapters/detector"
	"go.trai.ch/pdctl/internal/adapters/linear"
	"go.trai.ch/pdctl/internal/adapters/status"
	"go.trai.ch/pdctl/internal/adapters/telemetry"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/pdctl/internal/engine/planner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	indexLoader  ports.IndexLoader
	loop         *planner.IntentionLoop
	tracer       *telemetry.OTelTracer
	store        ports.ReportStore
	hasher       ports.Hasher
	vcs          ports.VCS
	editor       ports.Editor
	watcher      ports.Watcher
	logger       ports.Logger

	stdout      io.Writer
	stderr      io.Writer
	dir         string
	detect      func() detector.OutputMode
	now         func() time.Time
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	indexLoader ports.IndexLoader,
	loop *planner.IntentionLoop,
	tracer *telemetry.OTelTracer,
	store ports.ReportStore,
	hasher ports.Hasher,
	vcs ports.VCS,
	editor ports.Editor,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		indexLoader:  indexLoader,
		loop:         loop,
		tracer:       tracer,
		store:        store,
		hasher:       hasher,
		vcs:          vcs,
		editor:       editor,
		watcher:      watcher,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		detect:       detector.DetectEnvironment,
		now:          time.Now,
	}
}

// WithOutput sets the streams for listings and job output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkdir sets the directory commands run from instead of the process working directory.
func (a *App) WithWorkdir(dir string) *App {
	a.dir = dir
	return a
}

// WithTeaOptions adds bubbletea program options to the status view.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the status view spinner.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// UseConfigFile layers path over the workspace configuration in place of the user file.
func (a *App) UseConfigFile(path string) {
	if l, ok := a.configLoader.(interface{ SetUserConfigFile(path string) }); ok {
		l.SetUserConfigFile(path)
	}
}

// UseJSONLogs switches the logger to JSON records.
func (a *App) UseJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}

// RunOptions configures a planning command.
type RunOptions struct {
	Command domain.CommandKind
	// Intentions are processed in order. Nil selects the workspace default intentions;
	// an empty non-nil slice selects none.
	Intentions []domain.Intention
	Rebuild    domain.RebuildLevel
	// Lanes overrides the configured lane count when positive.
	Lanes    int
	FailFast bool
	// Args are the selector followed by test keywords or trailing build arguments.
	Args       []string
	OutputMode string
}

// Run loads the workspace and drives every phase of the command while rendering progress.
// A stored run report is written when at least one phase was dispatched.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.RunSummary, error) {
	var summary domain.RunSummary

	ws, err := a.workspace()
	if err != nil {
		return summary, err
	}

	req := a.request(ws, opts)

	renderer, err := a.newRenderer(ctx, opts.OutputMode)
	if err != nil {
		return summary, err
	}
	a.tracer.WithRenderer(renderer)
	defer a.tracer.WithRenderer(nil)

	started := a.now()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		var runErr error
		summary, runErr = a.loop.Run(gctx, req)
		return runErr
	})

	runErr := g.Wait()
	a.record(ws, req, started, summary, runErr)
	if runErr != nil {
		return summary, runErr
	}

	if len(summary.Phases) > 1 {
		a.logger.Info(summary.Synopsis())
	}
	if failed := summary.Failed(); failed > 0 {
		return summary, zerr.With(zerr.Wrap(domain.ErrJobsFailed, fmt.Sprintf("%s failed", req.Command)), "failed", failed)
	}
	return summary, nil
}

func (a *App) request(ws *domain.Workspace, opts RunOptions) planner.Request {
	intentions := opts.Intentions
	if intentions == nil {
		intentions = ws.Config.DefaultIntentions()
	}

	lanes := ws.Config.Lanes
	if opts.Lanes > 0 {
		lanes = opts.Lanes
	}

	policy := ports.PolicyContinue
	if opts.FailFast || ws.Config.FailFast {
		policy = ports.PolicyHalt
	}

	return planner.Request{
		Command:    opts.Command,
		Intentions: intentions,
		Rebuild:    opts.Rebuild,
		Lanes:      lanes,
		Policy:     policy,
		Args:       opts.Args,
		Workspace:  ws,
	}
}

func (a *App) newRenderer(ctx context.Context, outputMode string) (ports.Renderer, error) {
	mode, err := detector.ResolveMode(a.detect(), outputMode)
	if err != nil {
		return nil, err
	}

	if mode == detector.ModeStatus {
		model := status.NewModel()
		if a.disableTick {
			model = model.WithDisableTick()
		}
		opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		return status.NewRenderer(model, opts...), nil
	}

	return linear.NewRenderer(a.stdout, a.stderr), nil
}

func (a *App) record(ws *domain.Workspace, req planner.Request, started time.Time, summary domain.RunSummary, runErr error) {
	if len(summary.Phases) == 0 {
		return
	}

	report := domain.RunReport{
		Command:    req.Command,
		Intentions: req.Intentions,
		Started:    started,
		Finished:   a.now(),
		Phases:     summary.Phases,
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}

	if _, err := a.store.Put(ws.Route, report); err != nil {
		a.logger.Warn(fmt.Sprintf("run report not stored: %v", err))
	}
}

func (a *App) workdir() (string, error) {
	if a.dir != "" {
		return a.dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "cannot determine working directory")
	}
	return dir, nil
}

func (a *App) workspace() (*domain.Workspace, error) {
	dir, err := a.workdir()
	if err != nil {
		return nil, err
	}
	return a.configLoader.Load(dir)
}
