package ports

import "go.trai.ch/pdctl/internal/core/domain"

// ConfigLoader defines the interface for locating and loading the workspace.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the workspace enclosing cwd and returns it with its layered configuration.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to find the product root.
	// Returns the directory containing the .workspace route.
	DiscoverRoot(cwd string) (string, error)

	// Init writes the workspace configuration into a new route under product.
	Init(product string, cfg domain.WorkspaceConfig) (*domain.Workspace, error)
}
