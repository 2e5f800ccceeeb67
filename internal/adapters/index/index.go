package index

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectIndex = (*Index)(nil)

// Index is an immutable ports.ProjectIndex over a set of projects.
type Index struct {
	projects []*domain.Project
	byID     map[string]*domain.Project
}

// New builds an index from projects, which must carry unique identifiers.
// Factors of each project are sorted in place.
func New(projects []*domain.Project) (*Index, error) {
	idx := &Index{
		projects: slices.Clone(projects),
		byID:     make(map[string]*domain.Project, len(projects)),
	}

	for _, p := range idx.projects {
		if _, dup := idx.byID[p.Identifier]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateProject, "cannot index product"), "project", p.Identifier)
		}
		idx.byID[p.Identifier] = p
		domain.SortFactors(p.Factors)
	}

	slices.SortFunc(idx.projects, func(a, b *domain.Project) int {
		return strings.Compare(string(a.Factor), string(b.Factor))
	})

	return idx, nil
}

// Split returns the project with the longest factor path containing path. The path
// must name that project's root or one of its factors.
func (x *Index) Split(path domain.FactorPath) (*domain.Project, domain.FactorPath, error) {
	var owner *domain.Project
	for _, p := range x.projects {
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

	return nil, "", zerr.With(zerr.Wrap(domain.ErrFactorNotFound, "no project or factor at path"), "path", path.String())
}

// Projects yields every project in factor path order.
func (x *Index) Projects() iter.Seq[*domain.Project] {
	return slices.Values(x.projects)
}

// Project returns the project with the given identifier.
func (x *Index) Project(id string) (*domain.Project, error) {
	if p, ok := x.byID[id]; ok {
		return p, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "unknown project"), "project", id)
}

// Len returns the number of projects.
func (x *Index) Len() int {
	return len(x.projects)
}
