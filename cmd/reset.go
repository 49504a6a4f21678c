package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the stopwatch without recording",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.timer.Reset(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "timer reset")
			return err
		},
	}
}
