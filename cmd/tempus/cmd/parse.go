package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/zone"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse an ISO-8601 string and show its fields",
	Long: `Parses a date/time string and prints the individual fields.

Accepted forms:
  2025-01-15
  2025-01-15T10:30:45
  2025-01-15T10:30:45.123Z
  2025-01-15T10:30:45+05:30`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	value, err := chrono.ParseISO(args[0])
	if err != nil {
		logger.LogError(err)
		printError("parse failed", err)
		return err
	}

	if zoneFlag != "" {
		value, err = zone.Resolve(value, zoneFlag)
		if err != nil {
			logger.LogError(err)
			printError("zone resolution failed", err)
			return err
		}
	}

	fmt.Printf("text:        %s\n", value.Text())
	fmt.Printf("year:        %d\n", value.Year())
	fmt.Printf("month:       %d\n", value.Month())
	fmt.Printf("day:         %d\n", value.Day())
	fmt.Printf("hour:        %d\n", value.Hour())
	fmt.Printf("minute:      %d\n", value.Minute())
	fmt.Printf("second:      %d\n", value.Second())
	fmt.Printf("millisecond: %d\n", value.Millisecond())
	fmt.Printf("zone:        %s\n", value.ZoneLabel())
	fmt.Printf("unix millis: %d\n", value.UnixMilli())

	return nil
}
