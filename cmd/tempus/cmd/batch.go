package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tempuslib/tempus/batch"
	"github.com/tempuslib/tempus/chrono"
	"github.com/tempuslib/tempus/core/log"
)

var batchPattern string

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Process a file of values line by line",
	Long: `Reads date/time strings from a file (one per line, "-" for stdin),
parses them all, and renders each with the given pattern. Lines that
fail to parse are reported but do not abort the rest of the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchPattern, "pattern", "p", "", "output pattern or preset")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	runLogger := logger.WithField("run_id", runID)

	lines, err := readLines(args[0])
	if err != nil {
		runLogger.LogError(err)
		printError("cannot read input", err)
		return err
	}

	pattern := batchPattern
	if pattern == "" {
		pattern = defaultPattern()
	}

	runLogger.Info("batch run started",
		log.Int("lines", len(lines)), log.String("pattern", pattern))

	parsed := batch.ParseAll(lines)
	values := make([]chrono.DateTime, len(parsed))
	for i, r := range parsed {
		values[i] = r.Value
	}
	formatted := batch.FormatAll(values, pattern)

	failed := 0
	for i := range lines {
		switch {
		case parsed[i].Err != nil:
			failed++
			fmt.Printf("%s\tERROR: %v\n", lines[i], parsed[i].Err)
		case formatted[i].Err != nil:
			failed++
			fmt.Printf("%s\tERROR: %v\n", lines[i], formatted[i].Err)
		default:
			fmt.Printf("%s\t%s\n", lines[i], formatted[i].Text)
		}
	}

	runLogger.Info("batch run finished",
		log.Int("total", len(lines)), log.Int("failed", failed))
	return nil
}

func readLines(path string) ([]string, error) {
	var reader *bufio.Scanner
	if path == "-" {
		reader = bufio.NewScanner(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = bufio.NewScanner(file)
	}

	var lines []string
	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, reader.Err()
}
