package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/humanize"
)

var (
	diffUnit  string
	diffHuman bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Difference between two values in a unit",
	Long: `Parses two date/time strings and prints b minus a in the given unit.

Month and year differences count completed anniversaries:

  tempus diff 2025-01-31 2025-02-28 --unit months   # 0
  tempus diff 2025-01-15 2025-01-20 --unit days     # 5`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffUnit, "unit", "u", "day", "unit (millisecond..year)")
	diffCmd.Flags().BoolVar(&diffHuman, "human", false, "print a relative phrase instead")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := chrono.ParseISO(args[0])
	if err != nil {
		logger.LogError(err)
		printError("parse failed for first value", err)
		return err
	}
	b, err := chrono.ParseISO(args[1])
	if err != nil {
		logger.LogError(err)
		printError("parse failed for second value", err)
		return err
	}

	if diffHuman {
		fmt.Println(humanize.Relative(a, b))
		return nil
	}

	unit, err := chrono.ParseUnit(diffUnit)
	if err != nil {
		logger.LogError(err)
		printError("unknown unit", err)
		return err
	}

	count, err := chrono.Diff(a, b, unit)
	if err != nil {
		logger.LogError(err)
		printError("diff failed", err)
		return err
	}

	fmt.Println(count)
	return nil
}
