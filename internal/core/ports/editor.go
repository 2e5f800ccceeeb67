package ports

import "context"

//go:generate mockgen -source=editor.go -destination=mocks/mock_editor.go -package=mocks

// Editor opens files in the user's editor.
type Editor interface {
	// Open blocks until the editor exits.
	Open(ctx context.Context, dir string, files []string) error
}
