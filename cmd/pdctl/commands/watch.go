package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pdctl/internal/adapters/watcher"
	"go.trai.ch/pdctl/internal/app"
	"go.trai.ch/pdctl/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [selector] [keywords...]",
		Short: "Re-run tests when product files change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := intentions(cmd)
			if err != nil {
				return err
			}
			kind := domain.KindTest
			if b, _ := cmd.Flags().GetBool("build"); b {
				kind = domain.KindBuild
			}
			window, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				RunOptions: c.runOptions(kind, in, args),
				Window:     window,
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Bool("build", false, "Re-run the build instead of the tests")
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period after the last change before re-running")
	addIntentionFlags(cmd)
	return cmd
}
