package domain

import "slices"

// CommandKind is the kind of job a command plans.
type CommandKind string

// Command kinds.
const (
	KindBuild     CommandKind = "build"
	KindDelineate CommandKind = "delineate"
	KindAnalyze   CommandKind = "analyze"
	KindTest      CommandKind = "test"
)

// Job groups used as bucket labels by the dispatcher.
const (
	GroupBuild = "FPI"
	GroupTest  = "Fates"
)

// Phase environment variables handed to spawned tool-chains.
const (
	EnvIntention = "INTENTION"
	EnvRebuild   = "FPI_REBUILD"
	EnvFProduct  = "F_PRODUCT"
	EnvProduct   = "PRODUCT"
	EnvProject   = "F_PROJECT"
)

// Group returns the dispatcher bucket for the kind.
func (k CommandKind) Group() string {
	if k == KindTest {
		return GroupTest
	}
	return GroupBuild
}

// Form returns the construction form tag prefixed to the intentions argument.
func (k CommandKind) Form() string {
	switch k {
	case KindDelineate:
		return "delineated"
	case KindAnalyze:
		return "analyzed"
	default:
		return ""
	}
}

// PerIntention reports whether each intention runs as its own phase.
// Build kinds hand every intention to a single tool-chain invocation instead.
func (k CommandKind) PerIntention() bool {
	return k == KindTest
}

// Phases splits the requested intentions into the ordered phase list for the kind.
func (k CommandKind) Phases(in []Intention) [][]Intention {
	if len(in) == 0 {
		return nil
	}
	if !k.PerIntention() {
		return [][]Intention{slices.Clone(in)}
	}
	out := make([][]Intention, len(in))
	for idx, i := range in {
		out[idx] = []Intention{i}
	}
	return out
}

// PhaseContext is the complete, immutable state of one planning phase.
// It is passed by value; nothing in the core reads these values from the process environment.
type PhaseContext struct {
	Command     CommandKind
	Intentions  []Intention
	Rebuild     RebuildLevel
	Lanes       int
	ProductRoot string
	ContextPath string
	CachePath   string
	// Inherit names process environment variables jobs may see.
	Inherit []string
}

// WithIntentions returns a copy of the context bound to the given intentions.
func (p PhaseContext) WithIntentions(in []Intention) PhaseContext {
	p.Intentions = slices.Clone(in)
	return p
}

// Label joins the phase's intentions with ':'.
func (p PhaseContext) Label() string {
	return JoinIntentions(p.Intentions, ":")
}

// Tags returns the phase constant tags used for log correlation.
func (p PhaseContext) Tags() []string {
	return []string{string(p.Command), p.Label()}
}

// Title returns the summary title of the phase, e.g. "Fates debug".
func (p PhaseContext) Title() string {
	if p.Command == KindTest {
		return p.Command.Group() + " " + p.Label()
	}
	return p.Command.Group() + " " + string(p.Command)
}

// Environment returns the variables every job of the phase carries.
func (p PhaseContext) Environment() map[string]string {
	env := map[string]string{
		EnvProduct: p.ProductRoot,
	}
	if p.Command == KindTest {
		env[EnvIntention] = p.Label()
		env[EnvFProduct] = p.ProductRoot
		return env
	}
	env[EnvRebuild] = p.Rebuild.String()
	env[EnvFProduct] = p.ContextPath
	return env
}
