package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pdctl/internal/core/domain"
)

func (c *CLI) newBuildCmd(kind domain.CommandKind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind) + " [selector] [args...]",
		Short: short,
		Long: short + ".\n\nThe selector names a project, a factor or a subtree; \".\" or nothing selects the\n" +
			"whole product. Remaining arguments are passed to the build tool-chain.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := intentions(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Run(cmd.Context(), c.runOptions(kind, in, args))
			return err
		},
	}
	cmd.Flags().SetInterspersed(false)
	addIntentionFlags(cmd)
	return cmd
}

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [selector] [keywords...]",
		Short: "Run the test factors of the selected projects",
		Long: "Run the test factors of the selected projects, one phase per intention.\n\n" +
			"Keywords filter test factors by name: @name matches exactly, .suffix matches the end,\n" +
			"+word matches a word, -word excludes it and anything else matches a substring.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := intentions(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Run(cmd.Context(), c.runOptions(domain.KindTest, in, args))
			return err
		},
	}
	cmd.Flags().SetInterspersed(false)
	addIntentionFlags(cmd)
	return cmd
}
