package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/zone"
)

var zonesCmd = &cobra.Command{
	Use:   "zones <text> <zone>...",
	Short: "Show a value in other zones",
	Long: `Parses a date/time string and shows its wall-clock time in each
given zone. Zones may be IANA names, fixed abbreviations, or literal
offsets:

  tempus zones 2025-01-15T12:00:00Z Europe/Berlin JST +05:30`,
	Args: cobra.MinimumNArgs(2),
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	value, err := chrono.ParseISO(args[0])
	if err != nil {
		logger.LogError(err)
		printError("parse failed", err)
		return err
	}

	for _, id := range args[1:] {
		resolved, err := zone.Resolve(value, id)
		if err != nil {
			logger.LogError(err)
			fmt.Printf("%-20s (unresolvable: %v)\n", id, err)
			continue
		}
		offset, _ := zone.Offset(value, id)
		fmt.Printf("%-20s %s (UTC%s)\n",
			id, resolved.Text(), zone.FormatOffset(offset))
	}

	return nil
}
