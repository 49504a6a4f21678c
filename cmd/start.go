package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quentel/tally/internal/adapters/taskpick"
)

func newStartCmd(app *app) *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "start [task]",
		Short: "Start or resume the stopwatch",
		Long:  "Start the stopwatch for a task, or resume a paused session. Without a task name the previous label is kept; --pick chooses one from your frequent tasks.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskName := ""
			if len(args) > 0 {
				taskName = args[0]
			}

			if pick && taskName == "" {
				picked, err := taskpick.Pick(app.history.Statistics(cmd.Context()).FrequentTasks)
				if err != nil {
					if errors.Is(err, taskpick.ErrCancelled) {
						return nil
					}
					return fmt.Errorf("pick task: %w", err)
				}
				taskName = picked
			}

			sample, err := app.timer.Start(cmd.Context(), taskName)
			if err != nil {
				return err
			}

			if sample.TaskName == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "timer running at %s\n", formatElapsed(sample.ElapsedMs))
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "timer running for %q at %s\n", sample.TaskName, formatElapsed(sample.ElapsedMs))
			return err
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick the task name from frequent tasks")

	return cmd
}
