package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/report"
)

// Report command flags.
var (
	reportFilters   filterFlags
	reportFlagAll   bool
	reportFlagExact bool
	reportFlagNotes bool
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r", "rep"},
	Short:   "Summarize time per project and tag",
	Long: `Summarize tracked time per project and per tag. Each session is rounded
to the configured interval before it is added to the totals; --exact
shows the unrounded sums instead.

Without --from, --to, or --all the report covers the current week,
Monday through Sunday.

Examples:
  track report
  track report --all --exact
  track report -p client-work --from 2026-02-01 --to 2026-02-28
  track report -t review --notes`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportFilters.register(reportCmd)
	reportCmd.Flags().BoolVarP(&reportFlagAll, "all", "a", false, "Include every session, not only this week")
	reportCmd.Flags().BoolVarP(&reportFlagExact, "exact", "x", false, "Show exact totals instead of rounded ones")
	reportCmd.Flags().BoolVar(&reportFlagNotes, "notes", false, "List session notes below the totals")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	filter, err := reportFilters.filter(reportFlagAll)
	if err != nil {
		return err
	}

	var rep *report.Report
	err = ctx.View("report", func(l *model.Ledger) error {
		var err error
		rep, err = ctx.Ledger.Report(l, filter, reportFlagExact, reportFlagNotes)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintReport(rep)
	}
	ctx.CLIFormatter().PrintReport(rep)
	return nil
}
