package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPauseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running stopwatch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sample, err := app.timer.Pause(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "paused at %s\n", formatElapsed(sample.ElapsedMs))
			return err
		},
	}
}
