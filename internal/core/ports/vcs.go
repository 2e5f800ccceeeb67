package ports

//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks

// Revision describes the checked out state of a repository.
type Revision struct {
	Branch string
	Commit string
	Clean  bool
}

// VCS reads version control state of the product.
type VCS interface {
	// Revision returns the revision of the repository containing path.
	// Returns nil, nil when path is not inside a repository.
	Revision(path string) (*Revision, error)
}
