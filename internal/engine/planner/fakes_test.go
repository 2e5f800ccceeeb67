package planner_test

import (
	"context"
	"iter"
	"slices"
	"strings"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// memoryIndex is an in-memory ports.ProjectIndex.
type memoryIndex struct {
	projects []*domain.Project
}

func newMemoryIndex(projects ...*domain.Project) *memoryIndex {
	for _, p := range projects {
		if p.Identifier == "" {
			p.Identifier = p.Factor.String()
		}
		domain.SortFactors(p.Factors)
	}
	slices.SortFunc(projects, func(a, b *domain.Project) int {
		return strings.Compare(string(a.Factor), string(b.Factor))
	})
	return &memoryIndex{projects: projects}
}

func (m *memoryIndex) Split(path domain.FactorPath) (*domain.Project, domain.FactorPath, error) {
	var owner *domain.Project
	for _, p := range m.projects {
		if path.Within(p.Factor) && (owner == nil || len(p.Factor) > len(owner.Factor)) {
			owner = p
		}
	}
	if owner != nil {
		if owner.Factor == path {
			return owner, path, nil
		}
		if _, ok := owner.Lookup(path); ok {
			return owner, path, nil
		}
	}
	return nil, "", zerr.With(zerr.Wrap(domain.ErrFactorNotFound, "no such factor"), "path", path.String())
}

func (m *memoryIndex) Projects() iter.Seq[*domain.Project] {
	return slices.Values(m.projects)
}

func (m *memoryIndex) Project(id string) (*domain.Project, error) {
	for _, p := range m.projects {
		if p.Identifier == id {
			return p, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "no such project"), "project", id)
}

func (m *memoryIndex) Len() int {
	return len(m.projects)
}

// staticLoader returns a fixed index.
type staticLoader struct {
	index ports.ProjectIndex
	err   error
}

func (l staticLoader) Load(context.Context, string) (ports.ProjectIndex, error) {
	return l.index, l.err
}

func (l staticLoader) Snapshot(string) (*domain.IndexSnapshot, error) {
	return nil, nil
}

func (l staticLoader) Store(string, domain.IndexSnapshot) error {
	return nil
}

// recordingDispatcher drains each phase sequentially and records every job it sees.
type recordingDispatcher struct {
	phases []ports.Phase
	jobs   [][]domain.JobDescriptor
	failOn int
	err    error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, phase ports.Phase) (domain.PhaseSummary, error) {
	d.phases = append(d.phases, phase)
	summary := domain.PhaseSummary{Title: phase.Title, Group: phase.Group, Tags: phase.Tags}

	var jobs []domain.JobDescriptor
	for !phase.Queue.Terminal() {
		items := phase.Queue.Take(1)
		if len(items) == 0 {
			break
		}
		seq, err := phase.Synthesizer.Synthesize(items[0])
		if err != nil {
			d.jobs = append(d.jobs, jobs)
			return summary, err
		}
		for j := range seq {
			jobs = append(jobs, j)
			summary.Jobs = append(summary.Jobs, domain.JobOutcome{CorrelationID: j.CorrelationID, Status: domain.JobPassed})
		}
		phase.Queue.Finish(items...)
	}
	summary.Items, _ = phase.Queue.Status()
	d.jobs = append(d.jobs, jobs)

	if d.err != nil && len(d.phases) == d.failOn {
		return summary, d.err
	}
	return summary, nil
}

// discardLogger collects log lines.
type discardLogger struct {
	lines []string
}

func (l *discardLogger) Info(msg string) { l.lines = append(l.lines, msg) }
func (l *discardLogger) Warn(msg string) { l.lines = append(l.lines, msg) }
func (l *discardLogger) Error(error)     {}

// sampleIndex is a product with three projects:
//
//	http.core    (test_parse, test_slow_io, helper)
//	http.client  requires http.core (test_io)
//	net          (no tests)
func sampleIndex() *memoryIndex {
	return newMemoryIndex(
		&domain.Project{
			Factor: "http.core",
			Factors: []domain.Factor{
				{Path: "http.core.parser", Type: "c"},
				{Path: "http.core.test.test_parse", Type: "py"},
				{Path: "http.core.test.test_slow_io", Type: "py"},
				{Path: "http.core.test.helper", Type: "py"},
			},
		},
		&domain.Project{
			Factor:   "http.client",
			Requires: []string{"http.core"},
			Factors: []domain.Factor{
				{Path: "http.client.session", Type: "c"},
				{Path: "http.client.test.test_io", Type: "py"},
			},
		},
		&domain.Project{
			Factor:  "net",
			Factors: []domain.Factor{{Path: "net.socket", Type: "c"}},
		},
	)
}

func sampleWorkspace() *domain.Workspace {
	cfg := domain.DefaultWorkspaceConfig()
	cfg.Build.Env = map[string]string{"CC": "clang"}
	return &domain.Workspace{
		Product: "/src/product",
		Route:   "/src/product/.workspace",
		Config:  cfg,
	}
}
