package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ProjectGraph is the requirement graph between projects.
type ProjectGraph struct {
	requires       map[string][]string
	executionOrder []string
}

// NewProjectGraph creates an empty graph.
func NewProjectGraph() *ProjectGraph {
	return &ProjectGraph{
		requires: make(map[string][]string),
	}
}

// AddProject adds a project and the identifiers it requires.
func (g *ProjectGraph) AddProject(id string, requires []string) error {
	if _, exists := g.requires[id]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateProject, "project already in graph"), "project", id)
	}
	g.requires[id] = slices.Clone(requires)
	g.executionOrder = nil
	return nil
}

// Len returns the number of projects.
func (g *ProjectGraph) Len() int {
	return len(g.requires)
}

// Requires returns the identifiers id depends on.
func (g *ProjectGraph) Requires(id string) []string {
	return slices.Clone(g.requires[id])
}

// Dependents returns the projects that require id, sorted.
func (g *ProjectGraph) Dependents(id string) []string {
	var out []string
	for p, reqs := range g.requires {
		if slices.Contains(reqs, id) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}

// Validate checks that every requirement exists and that the graph is acyclic.
// On success it fixes the execution order used by Walk. Projects are visited in sorted
// order so the result is deterministic.
func (g *ProjectGraph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.requires))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.requires[u] {
			if _, exists := g.requires[dep]; !exists {
				return zerr.With(zerr.With(zerr.Wrap(ErrUnknownRequirement, "unknown requirement"), "project", u), "requires", dep)
			}
			switch visited[dep] {
			case 1:
				return cycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, id := range slices.Sorted(maps.Keys(g.requires)) {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				g.executionOrder = nil
				return err
			}
		}
	}

	return nil
}

func cycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(zerr.Wrap(ErrCycleDetected, "requirement cycle"), "cycle", strings.Join(cycle, " -> "))
}

// Walk yields project identifiers with requirements before their dependents.
// It assumes Validate has been called and returned nil.
func (g *ProjectGraph) Walk() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range g.executionOrder {
			if !yield(id) {
				return
			}
		}
	}
}
