package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a task across all recorded sessions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			renamed := app.history.RenameTask(cmd.Context(), args[0], args[1])

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "renamed %d session(s)\n", renamed)
			return err
		},
	}
}
