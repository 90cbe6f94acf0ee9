package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show the effective configuration",
	Long: `Show the configuration in effect after merging defaults, the config
file, and TRACK_* environment variables.

Examples:
  track config
  TRACK_INTERVAL_MINUTES=6 track config
  track config --format json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := ctx.Config
	configFile := cfg.Path
	if configFile == "" {
		configFile = "(none)"
	}

	settings := []output.Setting{
		{Key: "config_file", Value: configFile},
		{Key: "storage.backend", Value: cfg.Storage.Backend},
		{Key: "storage.data_file", Value: cfg.Storage.DataFile},
		{Key: "storage.badger_dir", Value: cfg.Storage.BadgerDir},
		{Key: "storage.backup_on_repair", Value: cfg.Storage.BackupOnRepair},
		{Key: "storage.backup_dir", Value: cfg.BackupPath()},
		{Key: "report.interval_minutes", Value: cfg.Report.IntervalMinutes},
		{Key: "naming.similarity_cutoff", Value: cfg.Naming.SimilarityCutoff},
		{Key: "naming.suggest_tags", Value: cfg.Naming.SuggestTags},
		{Key: "log.level", Value: cfg.Log.Level},
		{Key: "log.json", Value: cfg.Log.JSON},
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(settings)
	}
	ctx.CLIFormatter().PrintSettings(settings)
	return nil
}
