package cmd

import (
	"bytes"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/output"
	"github.com/manav03panchal/track/internal/report"
	"github.com/manav03panchal/track/internal/storage"
)

// Export command flags.
var (
	exportFilters    filterFlags
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "x"},
	Short:   "Export sessions as JSON, CSV, or XML",
	Long: `Export sessions with their length in hours, rounded to the configured
interval. Every session is exported unless --week, --from, or --to narrows
the range. Output goes to stdout unless --output names a file.

On this command --format (short -F) picks the export format: json, csv, or
xml. The global -f display flag does not apply here, and the export is
written as raw data without tables or colors.

Examples:
  track export
  track export --format csv -o sessions.csv
  track export -F xml -p client-work --from 2026-02-01
  track export --week -F csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportFilters.register(exportCmd)
	exportFilters.registerWeek(exportCmd)
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Export format: json, csv, xml (replaces the global -f)")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "csv", "xml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := output.ParseExportFormat(exportFlagFormat)
	if err != nil {
		return err
	}
	filter, err := exportFilters.filter(!exportFilters.week)
	if err != nil {
		return err
	}

	var rows []report.Row
	err = ctx.View("export", func(l *model.Ledger) error {
		var err error
		rows, err = ctx.Ledger.ExportRows(l, filter)
		return err
	})
	if err != nil {
		return err
	}

	if exportFlagOutput == "" {
		return output.Export(ctx.Stdout(), format, rows)
	}

	var buf bytes.Buffer
	if err := output.Export(&buf, format, rows); err != nil {
		return err
	}
	if err := storage.EnsureDirectory(filepath.Dir(exportFlagOutput)); err != nil {
		return err
	}
	if err := storage.SafeWrite(exportFlagOutput, buf.Bytes(), 0644); err != nil {
		return err
	}

	ctx.CLIFormatter().PrintExported(len(rows), exportFlagOutput, format)
	return nil
}
