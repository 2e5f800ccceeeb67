package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Editor = (*Editor)(nil)

// Editor implements ports.Editor by running $VISUAL or $EDITOR on the controlling terminal.
type Editor struct {
	getenv func(string) string
}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{getenv: os.Getenv}
}

// Command returns the editor argv for files, or ErrEditorNotSet.
func (e *Editor) Command(files []string) ([]string, error) {
	line := e.getenv("VISUAL")
	if strings.TrimSpace(line) == "" {
		line = e.getenv("EDITOR")
	}
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil, zerr.Wrap(domain.ErrEditorNotSet, "cannot edit")
	}
	return append(argv, files...), nil
}

// Open runs the editor in dir and waits for it to exit.
func (e *Editor) Open(ctx context.Context, dir string, files []string) error {
	argv, err := e.Command(files)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user configured editor
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), "editor failed"), "editor", argv[0])
	}
	return nil
}
