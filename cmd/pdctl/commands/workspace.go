package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"init"},
		Short:   "Create the workspace context in the current directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := intentions(cmd)
			if err != nil {
				return err
			}
			return c.app.Initialize(cmd.Context(), in)
		},
	}
	addIntentionFlags(cmd)
	return cmd
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rebuild the stored product index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Update(cmd.Context())
			return err
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the workspace, its index and the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Status(cmd.Context())
			return err
		},
	}
}

func (c *CLI) newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "project-list",
		Aliases: []string{"ls", "project_list"},
		Short:   "List the projects of the product",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ProjectList(cmd.Context())
		},
	}
}

func (c *CLI) newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [factor...]",
		Short: "List the source files of factors and everything within them",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Sources(cmd.Context(), args)
		},
	}
}

func (c *CLI) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [factor...]",
		Short: "Open the source files of factors in $EDITOR",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Edit(cmd.Context(), args)
		},
	}
}

func (c *CLI) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clear(cmd.Context())
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove captured output and run reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context())
		},
	}
}
