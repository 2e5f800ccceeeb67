// Package detector selects the output mode for job rendering.
package detector

import (
	"os"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStatus selects the interactive lanes view.
	ModeStatus
	// ModeLinear selects line-prefixed CI logs.
	ModeLinear
)

// String returns the flag value naming the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeStatus:
		return "status"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for the current process.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// Detect picks linear output for pipes and CI, the status view otherwise.
func Detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeStatus
}

// ResolveMode applies the --output-mode flag to the detected mode.
func ResolveMode(detected OutputMode, flag string) (OutputMode, error) {
	switch flag {
	case "status", "tui":
		return ModeStatus, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return detected, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrUsage, "unknown output mode"), "output_mode", flag)
	}
}
