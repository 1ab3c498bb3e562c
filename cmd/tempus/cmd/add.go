package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/core/log"
)

var addDuration chrono.Duration

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Shift a value by a calendar duration",
	Long: `Parses a date/time string and applies a calendar duration.

Calendar units (years, months) are applied before linear units, with
end-of-month clamping:

  tempus add 2025-01-31 --months 1      # 2025-02-28
  tempus add 2025-01-15 --days 5 --hours 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addDuration.Years, "years", 0, "years to add")
	addCmd.Flags().IntVar(&addDuration.Months, "months", 0, "months to add")
	addCmd.Flags().IntVar(&addDuration.Weeks, "weeks", 0, "weeks to add")
	addCmd.Flags().IntVar(&addDuration.Days, "days", 0, "days to add")
	addCmd.Flags().IntVar(&addDuration.Hours, "hours", 0, "hours to add")
	addCmd.Flags().IntVar(&addDuration.Minutes, "minutes", 0, "minutes to add")
	addCmd.Flags().IntVar(&addDuration.Seconds, "seconds", 0, "seconds to add")
	addCmd.Flags().IntVar(&addDuration.Milliseconds, "millis", 0, "milliseconds to add")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	value, err := chrono.ParseISO(args[0])
	if err != nil {
		logger.LogError(err)
		printError("parse failed", err)
		return err
	}

	result := chrono.AddDuration(value, addDuration)

	logger.Debug("applied duration",
		log.Fields{"from": value.Text(), "to": result.Text()})
	fmt.Println(result.Text())
	return nil
}
