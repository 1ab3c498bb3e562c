package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/zone"
)

var listPresets bool

var formatCmd = &cobra.Command{
	Use:   "format <text> [pattern]",
	Short: "Render a value with a pattern or preset",
	Long: `Parses a date/time string and renders it with the given pattern.

The pattern may be a preset name (ISO, SQL, RFC2822, ...) or a token
pattern like "YYYY-MM-DD HH:mm". Bracketed spans are literal text:

  tempus format 2025-01-15 "[Today is] dddd"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&listPresets, "presets", false, "list available presets and exit")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	if listPresets {
		presets := chrono.Presets()
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-10s %s\n", name, presets[name])
		}
		return nil
	}

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

	pattern := defaultPattern()
	if len(args) == 2 {
		pattern = args[1]
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
