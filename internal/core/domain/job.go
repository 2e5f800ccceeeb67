package domain

import (
	"maps"
	"slices"
	"strings"
)

// Invocation is an external process command: its argv and explicit environment overrides.
type Invocation struct {
	Args []string          `json:"args"`
	Env  map[string]string `json:"env,omitempty"`
	Dir  string            `json:"dir,omitempty"`
	// Inherit names process environment variables passed through besides the executor's
	// allow-list.
	Inherit []string `json:"inherit,omitempty"`
}

// Executable returns argv[0], or "" for an empty invocation.
func (i Invocation) Executable() string {
	if len(i.Args) == 0 {
		return ""
	}
	return i.Args[0]
}

// JobDescriptor is the unit of work handed to the dispatcher.
type JobDescriptor struct {
	Group         string     `json:"group"`
	Dimensions    []string   `json:"dimensions"`
	CorrelationID string     `json:"correlation_id"`
	Invocation    Invocation `json:"invocation"`
}

// NewJobDescriptor builds a descriptor whose correlation id is the dimensions joined by '/'.
func NewJobDescriptor(group string, dimensions []string, inv Invocation) JobDescriptor {
	inv.Args = slices.Clone(inv.Args)
	inv.Env = maps.Clone(inv.Env)
	inv.Inherit = slices.Clone(inv.Inherit)
	return JobDescriptor{
		Group:         group,
		Dimensions:    slices.Clone(dimensions),
		CorrelationID: strings.Join(dimensions, "/"),
		Invocation:    inv,
	}
}
