package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
)

// Delete command flags.
var (
	deleteFlagSession string
	deleteFlagTag     string
	deleteFlagProject string
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"del", "rm"},
	Short:   "Delete sessions",
	Long: `Delete one session by id, every session of a project, or every session
carrying a tag. With --tag, --project limits the match to that project.

Examples:
  track delete --session 3f2b9c1e
  track delete --project old-client
  track delete --tag meeting --project client-work`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteFlagSession, "session", "s", "", "Session id")
	deleteCmd.Flags().StringVarP(&deleteFlagTag, "tag", "t", "", "Delete sessions with this tag")
	deleteCmd.Flags().StringVarP(&deleteFlagProject, "project", "p", "", "Delete sessions of this project")

	deleteCmd.RegisterFlagCompletionFunc("session", completeSessionIDs)
	deleteCmd.RegisterFlagCompletionFunc("tag", completeTags)
	deleteCmd.RegisterFlagCompletionFunc("project", completeProjects)

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	req := ledger.DeleteRequest{
		SessionID: deleteFlagSession,
		Tag:       deleteFlagTag,
		Project:   deleteFlagProject,
	}

	var n int
	err := ctx.Update("delete", func(l *model.Ledger) error {
		var err error
		n, err = ctx.Ledger.Delete(l, req)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDeleted(n)
	}
	ctx.CLIFormatter().PrintDeleted(n)
	return nil
}
