// Package main is the entry point for pdctl.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/cmd/pdctl/commands"
	"go.trai.ch/pdctl/internal/app"
	"go.trai.ch/pdctl/internal/core/domain"
	_ "go.trai.ch/pdctl/internal/wiring"
)

// Exit codes.
const (
	exitOK             = 0
	exitFailure        = 1
	exitUnknownCommand = 3
	exitNoCommand      = 254
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrNoCommand):
		return exitNoCommand
	case errors.Is(err, domain.ErrJobsFailed):
		// Failures are already reported by the renderer and the run synopsis.
		return exitFailure
	case errors.Is(err, domain.ErrUnknownCommand):
		components.Logger.Error(err)
		return exitUnknownCommand
	default:
		components.Logger.Error(err)
		return exitFailure
	}
}
