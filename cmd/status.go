package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stopwatch state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sample := app.timer.SampleNow(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sample)
			}

			state := "paused"
			switch {
			case sample.Running:
				state = "running"
			case sample.ElapsedMs == 0:
				state = "idle"
			}

			if sample.TaskName == "" {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s at %s\n", state, formatElapsed(sample.ElapsedMs))
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s for %q at %s\n", state, sample.TaskName, formatElapsed(sample.ElapsedMs))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sample as JSON")

	return cmd
}
