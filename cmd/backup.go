package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/output"
	"github.com/manav03panchal/track/internal/storage"
)

// backupCmd groups the backup subcommands.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List and restore ledger backups",
	Long: `A compressed backup of the ledger is written before a repaired ledger is
saved, and before a restore replaces it.

Examples:
  track backup list
  track backup restore ~/.track/backups/ledger-20260223-090000.000000000.json.zst`,
}

// backupListCmd represents the backup list command.
var backupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List backups, oldest first",
	Args:    cobra.NoArgs,
	RunE:    runBackupList,
}

// backupRestoreCmd represents the backup restore command.
var backupRestoreCmd = &cobra.Command{
	Use:   "restore PATH",
	Short: "Replace the ledger with a backup",
	Long: `Replace the ledger with the contents of a backup. The backup is checked
before anything is written, and the current ledger is backed up first.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

func runBackupList(cmd *cobra.Command, args []string) error {
	paths, err := storage.ListBackups(ctx.Config.BackupPath())
	if err != nil {
		return errors.NewSystemErrorWithOp("backup list", "failed to list backups", err)
	}

	backups := make([]output.Backup, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, output.Backup{Path: path, Size: info.Size(), ModTime: info.ModTime()})
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintBackups(backups)
	}
	ctx.CLIFormatter().PrintBackups(backups)
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	blob, err := storage.ReadBackup(args[0])
	if err != nil {
		return err
	}
	restored, _, err := storage.Load(blob, ctx.Store.IDs())
	if err != nil {
		return err
	}

	previous, err := ctx.Restore(restored)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRestored(args[0], previous, len(restored.Sessions))
	}
	ctx.CLIFormatter().PrintRestored(args[0], previous, len(restored.Sessions))
	return nil
}
