package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the running timer",
	Long: `Show the running timer with its project, tags, and elapsed time.
Running track without a command does the same.

Examples:
  track status
  track status --format json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var current *ledger.Status
	err := ctx.View("status", func(l *model.Ledger) error {
		if status, ok := ctx.Ledger.Status(l); ok {
			current = &status
		}
		return nil
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(current)
	}
	ctx.CLIFormatter().PrintStatus(current)
	return nil
}
