// Package commands implements the CLI commands for pdctl.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pdctl/internal/app"
	"go.trai.ch/pdctl/internal/build"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for pdctl.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   rootFlags
}

type rootFlags struct {
	rebuild    bool
	recreate   bool
	lanes      int
	failFast   bool
	outputMode string
	logJSON    bool
	config     string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (domain.RunSummary, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
	Initialize(ctx context.Context, intentions []domain.Intention) error
	Update(ctx context.Context) (*domain.IndexSnapshot, error)
	Status(ctx context.Context) (*app.StatusReport, error)
	ProjectList(ctx context.Context) error
	Sources(ctx context.Context, factors []string) error
	Edit(ctx context.Context, factors []string) error
	Clear(ctx context.Context) error
	Clean(ctx context.Context) error
	UseConfigFile(path string)
	UseJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pdctl",
		Short:         "Build and test the projects of a product workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "unknown command"), "command", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Help()
			return domain.ErrNoCommand
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&c.flags.rebuild, "rebuild", "r", false, "Rebuild build products in place")
	pf.BoolVarP(&c.flags.recreate, "recreate", "R", false, "Recreate build products from scratch")
	pf.IntVarP(&c.flags.lanes, "lanes", "j", 0, "Number of concurrent jobs (default from workspace.yaml)")
	pf.BoolVar(&c.flags.failFast, "fail-fast", false, "Stop dispatching after the first failed job")
	pf.StringVar(&c.flags.outputMode, "output-mode", "auto", "Output mode: auto, status, or linear")
	pf.BoolVar(&c.flags.logJSON, "log-json", false, "Write log records as JSON")
	pf.StringVar(&c.flags.config, "config", "", "User configuration file layered over workspace.yaml")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if c.flags.lanes < 0 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidLanes, "invalid --lanes"), "lanes", c.flags.lanes)
		}
		if c.flags.config != "" {
			c.app.UseConfigFile(c.flags.config)
		}
		if c.flags.logJSON {
			c.app.UseJSONLogs(true)
		}
		return nil
	}

	rootCmd.AddCommand(c.newBuildCmd(domain.KindBuild, "Build the selected projects"))
	rootCmd.AddCommand(c.newBuildCmd(domain.KindDelineate, "Delineate the selected projects"))
	rootCmd.AddCommand(c.newBuildCmd(domain.KindAnalyze, "Analyze the selected projects"))
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newInitializeCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newProjectListCmd())
	rootCmd.AddCommand(c.newSourcesCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) rebuildLevel() domain.RebuildLevel {
	switch {
	case c.flags.recreate:
		return domain.RebuildRecreate
	case c.flags.rebuild:
		return domain.RebuildOverwrite
	default:
		return domain.RebuildRespect
	}
}

func (c *CLI) runOptions(kind domain.CommandKind, intentions []domain.Intention, args []string) app.RunOptions {
	return app.RunOptions{
		Command:    kind,
		Intentions: intentions,
		Rebuild:    c.rebuildLevel(),
		Lanes:      c.flags.lanes,
		FailFast:   c.flags.failFast,
		Args:       args,
		OutputMode: c.flags.outputMode,
	}
}
