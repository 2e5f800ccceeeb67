package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceNotFound is returned when no .workspace directory exists above the working directory.
	ErrWorkspaceNotFound = zerr.New("could not find a .workspace directory")

	// ErrWorkspaceExists is returned when initializing a workspace that already exists.
	ErrWorkspaceExists = zerr.New("workspace directory already exists")

	// ErrConfigReadFailed is returned when the workspace configuration cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read workspace configuration")

	// ErrConfigParseFailed is returned when the workspace configuration cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse workspace configuration")

	// ErrConfigWriteFailed is returned when the workspace configuration cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write workspace configuration")

	// ErrInvalidVersion is returned when the workspace version is not a semantic version.
	ErrInvalidVersion = zerr.New("invalid workspace version")

	// ErrUnsupportedVersion is returned when the workspace version is outside the supported range.
	ErrUnsupportedVersion = zerr.New("unsupported workspace version")

	// ErrInvalidLanes is returned when the lane count is not positive.
	ErrInvalidLanes = zerr.New("lane count must be at least 1")

	// ErrFactorNotFound is returned by a project index when a path names no project or factor.
	ErrFactorNotFound = zerr.New("factor not found")

	// ErrProjectNotFound is returned when a project identifier is unknown to the index.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrDuplicateProject is returned when two manifests declare the same identifier.
	ErrDuplicateProject = zerr.New("duplicate project identifier")

	// ErrUnknownRequirement is returned when a project requires a project that does not exist.
	ErrUnknownRequirement = zerr.New("unknown required project")

	// ErrCycleDetected is returned when project requirements form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrManifestReadFailed is returned when a project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read project manifest")

	// ErrManifestParseFailed is returned when a project manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse project manifest")

	// ErrIndexLoadFailed is returned when the project index cannot be loaded.
	ErrIndexLoadFailed = zerr.New("failed to load project index")

	// ErrSnapshotReadFailed is returned when the stored index snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read index snapshot")

	// ErrSnapshotWriteFailed is returned when the index snapshot cannot be stored.
	ErrSnapshotWriteFailed = zerr.New("failed to write index snapshot")

	// ErrUnknownIntention is returned when an intention name is not recognized.
	ErrUnknownIntention = zerr.New("unknown intention")

	// ErrUnknownIntentionCode is returned when an intention flag letter is not recognized.
	ErrUnknownIntentionCode = zerr.New("unknown intention code")

	// ErrInvalidRebuildLevel is returned when a rebuild level is outside 0..2.
	ErrInvalidRebuildLevel = zerr.New("rebuild level must be 0, 1 or 2")

	// ErrNoCommand is returned when pdctl is invoked without a command.
	ErrNoCommand = zerr.New("no command given")

	// ErrUnknownCommand is returned when the command is not recognized.
	ErrUnknownCommand = zerr.New("unrecognized command")

	// ErrUsage is returned for invalid flags or arguments.
	ErrUsage = zerr.New("invalid usage")

	// ErrJobsFailed is returned when at least one dispatched job failed.
	ErrJobsFailed = zerr.New("one or more jobs failed")

	// ErrPhaseHalted is returned when the halt policy stopped a phase after a job failure.
	ErrPhaseHalted = zerr.New("phase halted after job failure")

	// ErrQueueStalled is returned when a queue has items left but none can be taken.
	ErrQueueStalled = zerr.New("queue stalled with unavailable items")

	// ErrSynthesisFailed is returned when jobs cannot be synthesized for a queue item.
	ErrSynthesisFailed = zerr.New("failed to plan jobs")

	// ErrEmptyInvocation is returned when a job carries no executable.
	ErrEmptyInvocation = zerr.New("job invocation is empty")

	// ErrCommandFailed is returned when a job's process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrStoreCreateFailed is returned when the report directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create report directory")

	// ErrStoreReadFailed is returned when a run report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run report")

	// ErrStoreWriteFailed is returned when a run report cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run report")

	// ErrStoreMarshalFailed is returned when a run report cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal run report")

	// ErrStoreUnmarshalFailed is returned when a run report cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal run report")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrEditorNotSet is returned when EDITOR is not set for the edit command.
	ErrEditorNotSet = zerr.New("EDITOR is not set")

	// ErrRemoveFailed is returned when a workspace directory cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove directory")

	// ErrRevisionReadFailed is returned when the repository state cannot be read.
	ErrRevisionReadFailed = zerr.New("failed to read repository revision")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch workspace")

	// ErrCreateFailed is returned when a workspace directory cannot be created.
	ErrCreateFailed = zerr.New("failed to create directory")
)
