package main

import (
	"os"

	"github.com/tempuslib/tempus/cmd/tempus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
