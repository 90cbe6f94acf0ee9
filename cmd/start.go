package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
)

// Start command flags.
var (
	startFlagProject         string
	startFlagTags            []string
	startFlagNote            string
	startFlagAt              string
	startFlagForceNewProject bool
	startFlagForceNewTag     bool
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s", "begin"},
	Short:   "Start a timer for a project",
	Long: `Start a timer for a project. Names are normalized to lowercase words
joined by hyphens, so "Client Work" is stored as client-work.

A new name that is close to an existing one is rejected to catch typos;
pass --force-new-project or --force-new-tag to keep it anyway.

Examples:
  track start --project "Client Work"
  track start -p client-work -t review -t meeting
  track start -p client-work --note "sprint planning"
  track start -p client-work --at "15 minutes ago"`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startFlagProject, "project", "p", "", "Project name")
	startCmd.Flags().StringArrayVarP(&startFlagTags, "tag", "t", nil, "Tag (repeatable)")
	startCmd.Flags().StringVarP(&startFlagNote, "note", "n", "", "Note for the session")
	startCmd.Flags().StringVar(&startFlagAt, "at", "", "Start time instead of now")
	startCmd.Flags().BoolVar(&startFlagForceNewProject, "force-new-project", false, "Accept a project name close to an existing one")
	startCmd.Flags().BoolVar(&startFlagForceNewTag, "force-new-tag", false, "Accept tag names close to existing ones")
	startCmd.MarkFlagRequired("project")

	startCmd.RegisterFlagCompletionFunc("project", completeProjects)
	startCmd.RegisterFlagCompletionFunc("tag", completeTags)

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	req := ledger.StartRequest{
		Project:         startFlagProject,
		Tags:            startFlagTags,
		Note:            startFlagNote,
		ForceNewProject: startFlagForceNewProject,
		ForceNewTag:     startFlagForceNewTag,
	}
	if startFlagAt != "" {
		at, err := parser.ParseMoment(startFlagAt, time.Now())
		if err != nil {
			return err
		}
		req.At = at
	}

	var timer *model.ActiveTimer
	err := ctx.Update("start", func(l *model.Ledger) error {
		var err error
		timer, err = ctx.Ledger.StartTimer(l, req)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStarted(timer)
	}
	ctx.CLIFormatter().PrintStarted(startFlagProject)
	return nil
}
