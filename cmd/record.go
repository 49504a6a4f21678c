package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quentel/tally/internal/domain"
)

func newRecordCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Commit the current session to the history",
		Long:  "Record the elapsed time as a session in the history log and reset the stopwatch. A session with no elapsed time is skipped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sample := app.timer.SampleNow(ctx)
			record, err := app.history.Add(ctx, sample.TaskName, sample.ElapsedMs)
			if errors.Is(err, domain.ErrEmptySession) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "nothing to record")
				return err
			}
			if err != nil {
				return fmt.Errorf("record session: %w", err)
			}

			app.timer.Reset(ctx)

			if app.cfg.NotifyEnabled {
				// A missing notification daemon must not fail the commit.
				_ = app.notifier.Notify("tally", fmt.Sprintf("Recorded %s for %s", formatElapsed(record.DurationMs), record.TaskName))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s for %q\n", formatElapsed(record.DurationMs), record.TaskName)
			return err
		},
	}
}
