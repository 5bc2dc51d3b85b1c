package main

import (
	"os"

	"github.com/StevenSignal/dtek-schedule/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
