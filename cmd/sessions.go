package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/model"
)

var sessionsFilters filterFlags

// sessionsCmd represents the sessions command.
var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"ls", "list"},
	Short:   "List recorded sessions",
	Long: `List recorded sessions ordered by start time, with their ids, tags, and
rounded length in hours. Use the ids with delete and rename --session.

Examples:
  track sessions
  track sessions -p client-work
  track sessions --week
  track sessions --from 2026-02-23 --to 2026-02-23`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsFilters.register(sessionsCmd)
	sessionsFilters.registerWeek(sessionsCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	filter, err := sessionsFilters.filter(!sessionsFilters.week)
	if err != nil {
		return err
	}

	var sessions []*model.Session
	err = ctx.View("sessions", func(l *model.Ledger) error {
		var err error
		sessions, err = ctx.Ledger.ListSessions(l, filter)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSessions(sessions, ctx.Ledger.Interval)
	}
	ctx.CLIFormatter().PrintSessions(sessions, ctx.Ledger.Interval)
	return nil
}
