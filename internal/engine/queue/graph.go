package queue

import (
	"slices"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
)

// Graph drains every project of an index, releasing a project only once all of the
// projects it requires have been finished. Requirements naming projects outside the
// index are ignored.
type Graph struct {
	ready      []string
	inDegree   map[string]int
	dependents map[string][]string
	taken      int
	total      int
}

// NewGraph builds a queue over the whole index. It fails when the requirements form a cycle.
func NewGraph(index ports.ProjectIndex) (*Graph, error) {
	g := domain.NewProjectGraph()
	known := make(map[string]bool, index.Len())
	for p := range index.Projects() {
		known[p.Identifier] = true
	}
	for p := range index.Projects() {
		var reqs []string
		for _, r := range p.Requires {
			if known[r] && r != p.Identifier && !slices.Contains(reqs, r) {
				reqs = append(reqs, r)
			}
		}
		if err := g.AddProject(p.Identifier, reqs); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	q := &Graph{
		inDegree:   make(map[string]int, g.Len()),
		dependents: make(map[string][]string, g.Len()),
		total:      g.Len(),
	}
	for id := range g.Walk() {
		reqs := g.Requires(id)
		q.inDegree[id] = len(reqs)
		for _, r := range reqs {
			q.dependents[r] = append(q.dependents[r], id)
		}
		if len(reqs) == 0 {
			q.ready = append(q.ready, id)
		}
	}
	slices.Sort(q.ready)
	return q, nil
}

// Take removes up to n ready items. It may return fewer than n, or none, while
// items are still waiting on unfinished requirements.
func (q *Graph) Take(n int) []string {
	if n <= 0 || len(q.ready) == 0 {
		return nil
	}
	n = min(n, len(q.ready))
	out := slices.Clone(q.ready[:n])
	q.ready = q.ready[n:]
	q.taken += n
	return out
}

// Finish releases the dependents of the finished items.
func (q *Graph) Finish(items ...string) {
	var released []string
	for _, item := range items {
		for _, dep := range q.dependents[item] {
			q.inDegree[dep]--
			if q.inDegree[dep] == 0 {
				released = append(released, dep)
			}
		}
		delete(q.dependents, item)
	}
	slices.Sort(released)
	q.ready = append(q.ready, released...)
}

// Terminal reports whether every item has been taken.
func (q *Graph) Terminal() bool {
	return q.taken == q.total
}

// Status returns (consumed, total).
func (q *Graph) Status() (int, int) {
	return q.taken, q.total
}
