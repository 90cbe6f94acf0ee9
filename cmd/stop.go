package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
)

// Stop command flags.
var stopFlagAt string

// stopCmd represents the stop command.
var stopCmd = &cobra.Command{
	Use:     "stop",
	Aliases: []string{"e", "end"},
	Short:   "Stop the running timer",
	Long: `Stop the running timer and record it as a session.

Examples:
  track stop
  track stop --at "10 minutes ago"
  track stop --at "2026-02-23 17:30:00"`,
	Args: cobra.NoArgs,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopFlagAt, "at", "", "End time instead of now")
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	var at time.Time
	if stopFlagAt != "" {
		var err error
		if at, err = parser.ParseMoment(stopFlagAt, time.Now()); err != nil {
			return err
		}
	}

	var session *model.Session
	err := ctx.Update("stop", func(l *model.Ledger) error {
		var err error
		session, err = ctx.Ledger.StopTimer(l, at)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStopped(session, ctx.Ledger.Interval)
	}
	ctx.CLIFormatter().PrintStopped(session)
	return nil
}
