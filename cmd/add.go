package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
)

// Add command flags.
var (
	addFlagProject         string
	addFlagTags            []string
	addFlagNote            string
	addFlagFrom            string
	addFlagTo              string
	addFlagTime            string
	addFlagForceNewProject bool
	addFlagForceNewTag     bool
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a", "log"},
	Short:   "Record a finished session",
	Long: `Record a session that was not timed. Give either --from and --to, or
--time for a session of that length ending now.

Examples:
  track add -p client-work --from "2026-02-23 09:00:00" --to "2026-02-23 10:30:00"
  track add -p client-work -t review --time 45m
  track add -p client-work --time "1.5 hours" --note "code review"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagProject, "project", "p", "", "Project name")
	addCmd.Flags().StringArrayVarP(&addFlagTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.Flags().StringVarP(&addFlagNote, "note", "n", "", "Note for the session")
	addCmd.Flags().StringVar(&addFlagFrom, "from", "", "Session start (YYYY-MM-DD HH:MM:SS)")
	addCmd.Flags().StringVar(&addFlagTo, "to", "", "Session end (YYYY-MM-DD HH:MM:SS)")
	addCmd.Flags().StringVar(&addFlagTime, "time", "", "Session length ending now, e.g. 45m or '1.5 hours'")
	addCmd.Flags().BoolVar(&addFlagForceNewProject, "force-new-project", false, "Accept a project name close to an existing one")
	addCmd.Flags().BoolVar(&addFlagForceNewTag, "force-new-tag", false, "Accept tag names close to existing ones")
	addCmd.MarkFlagRequired("project")
	addCmd.MarkFlagsMutuallyExclusive("time", "from")
	addCmd.MarkFlagsMutuallyExclusive("time", "to")

	addCmd.RegisterFlagCompletionFunc("project", completeProjects)
	addCmd.RegisterFlagCompletionFunc("tag", completeTags)

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := ledger.AddRequest{
		Project:         addFlagProject,
		Tags:            addFlagTags,
		Note:            addFlagNote,
		From:            addFlagFrom,
		To:              addFlagTo,
		Duration:        addFlagTime,
		ForceNewProject: addFlagForceNewProject,
		ForceNewTag:     addFlagForceNewTag,
	}

	var session *model.Session
	err := ctx.Update("add", func(l *model.Ledger) error {
		var err error
		session, err = ctx.Ledger.AddSession(l, req)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAdded(session, ctx.Ledger.Interval)
	}
	ctx.CLIFormatter().PrintAdded(session)
	return nil
}
