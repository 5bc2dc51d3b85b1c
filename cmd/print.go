package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StevenSignal/dtek-schedule/app"
	"github.com/StevenSignal/dtek-schedule/config"
	"github.com/StevenSignal/dtek-schedule/infra/store"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render a summary of the last collected schedule without fetching",
	RunE:  printSummary,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func printSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	doc, err := store.Read(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Output.Path, err)
	}
	today := time.Now().Format("2006-01-02")
	for _, line := range app.Summary(doc, cfg.Groups, today) {
		fmt.Println(line)
	}
	return nil
}
