package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show the stopwatch live",
		Long:  "Show a live view of the stopwatch. The display re-derives elapsed time from the persisted wall-clock anchor on every tick, so it stays correct even after the terminal was suspended or unfocused.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval := time.Duration(app.cfg.WatchIntervalMs) * time.Millisecond
			return runWatch(cmd.Context(), cmd.OutOrStdout(), app, interval)
		},
	}
}
