package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "tally: a personal effort-tracking timer",
		Long:          "tally tracks focused work from the terminal: start a stopwatch, label the session, record it to a local history, and review per-task statistics with a 30-day trend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newPauseCmd(app),
		newResetCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newRecordCmd(app),
		newHistoryCmd(app),
		newRenameCmd(app),
		newStatsCmd(app),
	)

	return rootCmd
}
