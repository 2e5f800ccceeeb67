package domain

import (
	"slices"
	"time"
)

// Workspace is a product root together with its .workspace route and configuration.
type Workspace struct {
	Product string
	Route   string
	Config  WorkspaceConfig
}

// WorkspaceConfig is the resolved workspace configuration.
type WorkspaceConfig struct {
	Version    string
	Lanes      int
	FailFast   bool
	Intentions []Intention
	Contexts   []Intention
	Build      BuildSettings
	Test       TestSettings
	Inherit    []string
}

// BuildSettings configures the build tool-chain invocation.
type BuildSettings struct {
	Command []string
	Env     map[string]string
}

// TestSettings configures the test runner invocation.
type TestSettings struct {
	Runner []string
	Entry  string
	Debug  bool
	Env    map[string]string
}

// Defaults for a fresh workspace.
const (
	DefaultConfigVersion = "1.0.0"
	DefaultLanes         = 4
	DefaultTestEntry     = "fault.test.bin.coherence"
)

// DefaultWorkspaceConfig returns the configuration written by initialize.
func DefaultWorkspaceConfig() WorkspaceConfig {
	return WorkspaceConfig{
		Version:    DefaultConfigVersion,
		Lanes:      DefaultLanes,
		Intentions: []Intention{IntentionDebug},
		Contexts:   DefaultContexts(),
		Build: BuildSettings{
			Command: []string{"factors-cc"},
		},
		Test: TestSettings{
			Runner: []string{"python3"},
			Entry:  DefaultTestEntry,
			Debug:  true,
		},
	}
}

// DefaultContexts returns the intentions that get a construction context on initialize, in rank order.
func DefaultContexts() []Intention {
	return []Intention{IntentionOptimal, IntentionDebug, IntentionProfile, IntentionCoverage}
}

// DefaultIntentions returns the configured default intentions, falling back to debug.
func (c WorkspaceConfig) DefaultIntentions() []Intention {
	if len(c.Intentions) == 0 {
		return []Intention{IntentionDebug}
	}
	return slices.Clone(c.Intentions)
}

// IndexSnapshot is the stored product index: the projects found at a point in time
// and the source fingerprint they were computed from.
type IndexSnapshot struct {
	Fingerprint string     `json:"fingerprint"`
	Created     time.Time  `json:"created"`
	Projects    []*Project `json:"projects"`
}
