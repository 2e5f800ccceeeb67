package ports

// Hasher defines the interface for fingerprinting product sources.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the content hash of a single file.
	ComputeFileHash(path string) (uint64, error)

	// Fingerprint hashes every file path and content below root, skipping the ignored names.
	// Any added, removed or modified file changes the result.
	Fingerprint(root string, ignores []string) (string, error)
}
