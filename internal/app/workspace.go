package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var fingerprintIgnores = []string{domain.WorkspaceDirName}

// Initialize creates the workspace route in the working directory. The given intentions
// replace the default construction contexts. An existing workspace is reported, not replaced.
func (a *App) Initialize(_ context.Context, intentions []domain.Intention) error {
	dir, err := a.workdir()
	if err != nil {
		return err
	}

	cfg := domain.DefaultWorkspaceConfig()
	if len(intentions) > 0 {
		cfg.Contexts = domain.SortIntentions(intentions)
	}

	ws, err := a.configLoader.Init(dir, cfg)
	if errors.Is(err, domain.ErrWorkspaceExists) {
		a.logger.Warn(fmt.Sprintf("workspace already exists at %s", filepath.Join(dir, domain.WorkspaceDirName)))
		return nil
	}
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Workspace context initialized at %s.", ws.Route))
	return nil
}

// Update rebuilds the stored product index snapshot.
func (a *App) Update(ctx context.Context) (*domain.IndexSnapshot, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, err
	}

	fingerprint, err := a.hasher.Fingerprint(ws.Product, fingerprintIgnores)
	if err != nil {
		return nil, err
	}

	index, err := a.loadIndex(ctx, ws)
	if err != nil {
		return nil, err
	}

	snapshot := domain.IndexSnapshot{
		Fingerprint: fingerprint,
		Created:     a.now(),
		Projects:    slices.Collect(index.Projects()),
	}
	if err := a.indexLoader.Store(ws.Route, snapshot); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Indexed %d %s.", index.Len(), plural(index.Len(), "project", "projects")))
	return &snapshot, nil
}

// IndexState describes the stored index snapshot relative to the product sources.
type IndexState string

// Index states.
const (
	IndexMissing IndexState = "missing"
	IndexFresh   IndexState = "fresh"
	IndexStale   IndexState = "stale"
)

// StatusReport describes a workspace.
type StatusReport struct {
	Product  string
	Route    string
	Projects int
	Index    IndexState
	Revision *ports.Revision
	LastRun  *domain.RunReport
}

// Status reports the workspace routes, project count, index freshness, revision and last run,
// and prints them.
func (a *App) Status(ctx context.Context) (*StatusReport, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, err
	}

	index, err := a.loadIndex(ctx, ws)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		Product:  ws.Product,
		Route:    ws.Route,
		Projects: index.Len(),
		Index:    IndexMissing,
	}

	snapshot, err := a.indexLoader.Snapshot(ws.Route)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		fingerprint, err := a.hasher.Fingerprint(ws.Product, fingerprintIgnores)
		if err != nil {
			return nil, err
		}
		report.Index = IndexStale
		if fingerprint == snapshot.Fingerprint {
			report.Index = IndexFresh
		}
	}

	if report.Revision, err = a.vcs.Revision(ws.Product); err != nil {
		a.logger.Warn(fmt.Sprintf("revision unavailable: %v", err))
	}

	if report.LastRun, err = a.store.Latest(ws.Route); err != nil {
		return nil, err
	}

	report.write(a.stdout)
	return report, nil
}

func (r *StatusReport) write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "product:   %s\n", r.Product)
	_, _ = fmt.Fprintf(w, "workspace: %s\n", r.Route)
	_, _ = fmt.Fprintf(w, "projects:  %d\n", r.Projects)
	_, _ = fmt.Fprintf(w, "index:     %s\n", r.Index)

	revision := "none"
	if r.Revision != nil {
		commit := r.Revision.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		state := "clean"
		if !r.Revision.Clean {
			state = "modified"
		}
		revision = fmt.Sprintf("%s@%s (%s)", r.Revision.Branch, commit, state)
	}
	_, _ = fmt.Fprintf(w, "revision:  %s\n", revision)

	lastRun := "none"
	if r.LastRun != nil {
		lastRun = fmt.Sprintf("%s %s: %s", r.LastRun.Command,
			domain.JoinIntentions(r.LastRun.Intentions, ","), r.LastRun.Summary().Synopsis())
		if r.LastRun.Error != "" {
			lastRun += " (" + r.LastRun.Error + ")"
		}
	}
	_, _ = fmt.Fprintf(w, "last run:  %s\n", lastRun)
}

// ProjectList prints the factor path of every project.
func (a *App) ProjectList(ctx context.Context) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	index, err := a.loadIndex(ctx, ws)
	if err != nil {
		return err
	}

	for p := range index.Projects() {
		_, _ = fmt.Fprintln(a.stdout, p.Factor.String())
	}
	return nil
}

// Sources prints the source files of the given factors and everything within them,
// relative to the working directory. No factors selects the whole product.
func (a *App) Sources(ctx context.Context, factors []string) error {
	files, err := a.sources(ctx, factors)
	if err != nil {
		return err
	}
	for _, f := range files {
		_, _ = fmt.Fprintln(a.stdout, f)
	}
	return nil
}

// Edit opens the sources of the given factors in the user's editor.
func (a *App) Edit(ctx context.Context, factors []string) error {
	files, err := a.sources(ctx, factors)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Warn("no sources selected")
		return nil
	}

	dir, err := a.workdir()
	if err != nil {
		return err
	}
	return a.editor.Open(ctx, dir, files)
}

func (a *App) sources(ctx context.Context, factors []string) ([]string, error) {
	dir, err := a.workdir()
	if err != nil {
		return nil, err
	}
	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, err
	}
	index, err := a.loadIndex(ctx, ws)
	if err != nil {
		return nil, err
	}

	var selected []string
	if len(factors) == 0 {
		for p := range index.Projects() {
			selected = appendSources(selected, p, "")
		}
	}
	for _, token := range factors {
		project, path, err := index.Split(domain.ParseFactorPath(token))
		if err != nil {
			return nil, err
		}
		sub, _ := path.Relative(project.Factor)
		selected = appendSources(selected, project, sub)
	}

	out := make([]string, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, src := range selected {
		if seen[src] {
			continue
		}
		seen[src] = true
		out = append(out, relativeTo(dir, filepath.Join(ws.Product, filepath.FromSlash(src))))
	}
	return out, nil
}

func appendSources(dst []string, p *domain.Project, sub domain.FactorPath) []string {
	for f := range p.Select(sub) {
		dst = append(dst, f.Sources...)
	}
	return dst
}

func relativeTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Clear empties the build cache.
func (a *App) Clear(_ context.Context) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	if err := emptyDir(domain.CachePath(ws.Route)); err != nil {
		return err
	}
	a.logger.Info("Cleared build cache.")
	return nil
}

// Clean removes captured output and stored run reports.
func (a *App) Clean(_ context.Context) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	errs := emptyDir(domain.CapturesPath(ws.Route))

	n, err := a.store.Clear(ws.Route)
	errs = errors.Join(errs, err)
	if errs != nil {
		return errs
	}

	a.logger.Info(fmt.Sprintf("Removed captures and %d run %s.", n, plural(n, "report", "reports")))
	return nil
}

func (a *App) loadIndex(ctx context.Context, ws *domain.Workspace) (ports.ProjectIndex, error) {
	index, err := a.indexLoader.Load(ctx, ws.Product)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrIndexLoadFailed, err), "cannot load product index"),
			"product", ws.Product)
	}
	return index, nil
}

func emptyDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrRemoveFailed, err), "cannot remove directory"), "path", path)
	}
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCreateFailed, err), "cannot create directory"), "path", path)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
