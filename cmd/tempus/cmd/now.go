package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/zone"
)

var nowCmd = &cobra.Command{
	Use:   "now [pattern]",
	Short: "The current instant",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	value := chrono.Now()

	if zoneFlag != "" {
		resolved, err := zone.Resolve(value, zoneFlag)
		if err != nil {
			logger.LogError(err)
			printError("zone resolution failed", err)
			return err
		}
		value = resolved
	}

	pattern := defaultPattern()
	if len(args) == 1 {
		pattern = args[0]
	}

	text, err := chrono.Format(value, pattern)
	if err != nil {
		logger.LogError(err)
		printError("format failed", err)
		return err
	}

	fmt.Println(text)
	return nil
}
