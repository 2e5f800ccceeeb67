// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/pdctl/internal/core/domain"
)

// Executor defines the interface for running job invocations.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and streams its output to stdout and stderr.
	//
	// The invocation environment overrides are layered on top of the executor's
	// allow-listed process environment.
	//
	// It returns an error carrying the exit code when the process fails.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
