// Package vcs reads the revision of the repository containing the product.
package vcs

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Git implements ports.VCS with go-git.
type Git struct{}

// NewGit creates a new Git reader.
func NewGit() *Git {
	return &Git{}
}

// Revision returns the branch, head commit and worktree state of the repository containing path.
func (g *Git) Revision(path string) (*ports.Revision, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, wrap(err, "cannot open repository", path)
	}

	rev := &ports.Revision{}

	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// No commits yet.
	case err != nil:
		return nil, wrap(err, "cannot resolve HEAD", path)
	default:
		rev.Commit = head.Hash().String()
		if head.Name().IsBranch() {
			rev.Branch = head.Name().Short()
		}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, wrap(err, "cannot open worktree", path)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, wrap(err, "cannot read worktree status", path)
	}
	rev.Clean = status.IsClean()

	return rev, nil
}

func wrap(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrRevisionReadFailed, err), msg), "path", path)
}
