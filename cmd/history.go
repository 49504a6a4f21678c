package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quentel/tally/internal/domain"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and edit the session history",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryDeleteCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records := app.history.List(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			if len(records) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return err
			}

			for _, record := range records {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %-24s %s\n",
					record.Date, record.StartTime,
					formatElapsed(record.DurationMs),
					record.TaskName, record.ID,
				)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")

	return cmd
}

func newHistoryDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one recorded session by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.history.Delete(cmd.Context(), domain.RecordID(args[0]))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return err
		},
	}
}

func newHistoryClearCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the history without --yes")
			}

			app.history.Clear(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing all sessions")

	return cmd
}
