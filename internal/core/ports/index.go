package ports

import (
	"context"
	"iter"

	"go.trai.ch/pdctl/internal/core/domain"
)

//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks

// ProjectIndex is the read-only model of the product's projects and factors.
type ProjectIndex interface {
	// Split resolves a path to its owning project and the factor path within the product.
	// It returns domain.ErrFactorNotFound when the path names no project root or factor.
	Split(path domain.FactorPath) (*domain.Project, domain.FactorPath, error)

	// Projects yields every project in factor path order.
	Projects() iter.Seq[*domain.Project]

	// Project returns the project with the given identifier.
	// It returns domain.ErrProjectNotFound for unknown identifiers.
	Project(id string) (*domain.Project, error)

	// Len returns the number of projects.
	Len() int
}

// IndexLoader hydrates a ProjectIndex from the product on disk.
type IndexLoader interface {
	// Load discovers and parses every project below product.
	Load(ctx context.Context, product string) (ProjectIndex, error)

	// Snapshot returns the stored index snapshot of the workspace route.
	// Returns nil, nil if none exists.
	Snapshot(route string) (*domain.IndexSnapshot, error)

	// Store replaces the stored snapshot of the workspace route.
	Store(route string, snapshot domain.IndexSnapshot) error
}
