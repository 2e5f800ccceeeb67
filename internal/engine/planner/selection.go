// Package planner turns a selection, a set of intentions and a rebuild level into
// phases of jobs for the dispatcher.
package planner

import (
	"errors"
	"slices"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/pdctl/internal/engine/queue"
)

// WholeProduct is the selector token naming every project.
const WholeProduct = "."

// Selection is the resolved set of projects a command operates on.
type Selection struct {
	// Whole selects every project in requirement order.
	Whole bool
	// Projects are the explicitly selected project identifiers, in resolution order.
	Projects []string
}

// Resolve turns a selector token into a Selection.
//
// An absent token or "." selects the whole product. Otherwise the token is split by the
// index; when it names no project or factor, every project lying within the token's path
// is selected instead, which may be none.
func Resolve(token string, index ports.ProjectIndex) (Selection, error) {
	path := domain.ParseFactorPath(token)
	if token == "" || token == WholeProduct || path.IsRoot() {
		return Selection{Whole: true}, nil
	}

	project, _, err := index.Split(path)
	switch {
	case err == nil:
		return Selection{Projects: []string{project.Identifier}}, nil
	case !errors.Is(err, domain.ErrFactorNotFound):
		return Selection{}, err
	}

	var ids []string
	for p := range index.Projects() {
		if p.Factor.Within(path) {
			ids = append(ids, p.Identifier)
		}
	}
	return Selection{Projects: ids}, nil
}

// Queue builds a fresh drain queue for the selection.
func (s Selection) Queue(index ports.ProjectIndex) (ports.DrainQueue, error) {
	if s.Whole {
		return queue.NewGraph(index)
	}
	return queue.NewFlat(s.Projects), nil
}

// Plan describes the selection for renderers.
func (s Selection) Plan(index ports.ProjectIndex) ports.Plan {
	if !s.Whole {
		return ports.Plan{Items: slices.Clone(s.Projects), Targets: slices.Clone(s.Projects)}
	}

	plan := ports.Plan{Deps: make(map[string][]string, index.Len())}
	for p := range index.Projects() {
		plan.Items = append(plan.Items, p.Identifier)
		plan.Deps[p.Identifier] = slices.Clone(p.Requires)
	}
	return plan
}
