package domain

import "path/filepath"

const (
	// WorkspaceDirName is the name of the workspace context directory inside a product.
	WorkspaceDirName = ".workspace"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "workspace.yaml"

	// ManifestFileName is the name of the file marking a project directory.
	ManifestFileName = "project.yaml"

	// ContextDirName holds the construction contexts.
	ContextDirName = "cc"

	// HostDirName is the per-intention host context directory.
	HostDirName = "host"

	// CacheDirName is the build cache directory.
	CacheDirName = "cache"

	// CapturesDirName holds captured test and build output.
	CapturesDirName = "captures"

	// ReportsDirName holds stored run reports.
	ReportsDirName = "reports"

	// IndexDirName holds the product index snapshot.
	IndexDirName = "index"

	// IndexFileName is the product index snapshot file.
	IndexFileName = "projects.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// WorkspaceDirs lists the directories created under the workspace route by initialize.
var WorkspaceDirs = []string{ContextDirName, CacheDirName, CapturesDirName, ReportsDirName, IndexDirName}

// ContextPath returns the construction context directory of a workspace route.
func ContextPath(route string) string {
	return filepath.Join(route, ContextDirName)
}

// HostContextPath returns the host construction context for an intention.
func HostContextPath(route string, i Intention) string {
	return filepath.Join(route, ContextDirName, string(i), HostDirName)
}

// CachePath returns the build cache directory of a workspace route.
func CachePath(route string) string {
	return filepath.Join(route, CacheDirName)
}

// CapturesPath returns the captures directory of a workspace route.
func CapturesPath(route string) string {
	return filepath.Join(route, CapturesDirName)
}

// ReportsPath returns the run report directory of a workspace route.
func ReportsPath(route string) string {
	return filepath.Join(route, ReportsDirName)
}

// IndexSnapshotPath returns the path of the stored product index snapshot.
func IndexSnapshotPath(route string) string {
	return filepath.Join(route, IndexDirName, IndexFileName)
}
