package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/core/config"
	"github.com/tempuslib/tempus/core/log"
	"github.com/tempuslib/tempus/zone"
)

var (
	cfgFile   string
	zoneFlag  string
	verbose   bool
	appConfig *config.Config
	logger    = log.New().WithName("tempus").WithFormat(log.FormatConsole)
)

var rootCmd = &cobra.Command{
	Use:   "tempus",
	Short: "tempus - calendar date/time toolbox",
	Long: `tempus works with calendar date/time values from the command line.

Commands:
  parse    - parse an ISO-8601 string and show its fields
  format   - render a value with a pattern or preset
  add      - shift a value by a calendar duration
  diff     - difference between two values in a unit
  now      - the current instant
  zones    - show a value in another zone
  batch    - process a file of values line by line`,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&zoneFlag, "zone", "", "show results in this zone")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the optional config file and applies it before any command
// runs: log level, default zone, and user-defined zone abbreviations.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}

	if cfgFile == "" {
		return nil
	}

	cfg, err := config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "tempus",
	})
	if err != nil {
		logger.LogError(err)
		return err
	}
	appConfig = cfg

	if level := cfg.GetString("log.level"); level != "" {
		if parsed, err := log.ParseLevel(level); err == nil {
			logger = logger.WithLevel(parsed)
		}
	}

	if zoneFlag == "" {
		zoneFlag = cfg.GetString("zone.default")
	}

	// [zones.abbreviations] section: name = offset minutes
	if abbrevs, ok := cfg.GetAll()["zones"].(map[string]interface{}); ok {
		if table, ok := abbrevs["abbreviations"].(map[string]interface{}); ok {
			for name, value := range table {
				if minutes, ok := toInt(value); ok {
					zone.Register(name, minutes)
					logger.Debug("registered zone abbreviation",
						log.String("abbr", name), log.Int("offset_minutes", minutes))
				}
			}
		}
	}

	return nil
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func defaultPattern() string {
	if appConfig != nil {
		if p := appConfig.GetString("format.default"); p != "" {
			return p
		}
	}
	return "ISO"
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
