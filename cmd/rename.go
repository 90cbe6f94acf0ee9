package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
)

// Rename command flags.
var (
	renameFlagProject string
	renameFlagTag     string
	renameFlagSession string
	renameFlagTo      string
)

// renameCmd represents the rename command.
var renameCmd = &cobra.Command{
	Use:     "rename",
	Aliases: []string{"mv"},
	Short:   "Rename a project or a tag",
	Long: `Rename a project or a tag across every session. A tag rename can be
limited to one session with --session. The new name is normalized the
same way as names given to start and add.

Examples:
  track rename --project client-work --to acme
  track rename --tag mtg --to meeting
  track rename --tag mtg --to meeting --session 3f2b9c1e`,
	Args: cobra.NoArgs,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVarP(&renameFlagProject, "project", "p", "", "Project to rename")
	renameCmd.Flags().StringVarP(&renameFlagTag, "tag", "t", "", "Tag to rename")
	renameCmd.Flags().StringVarP(&renameFlagSession, "session", "s", "", "Only rename the tag in this session")
	renameCmd.Flags().StringVar(&renameFlagTo, "to", "", "New name")
	renameCmd.MarkFlagRequired("to")
	renameCmd.MarkFlagsMutuallyExclusive("project", "tag")

	renameCmd.RegisterFlagCompletionFunc("project", completeProjects)
	renameCmd.RegisterFlagCompletionFunc("tag", completeTags)
	renameCmd.RegisterFlagCompletionFunc("session", completeSessionIDs)

	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	req := ledger.RenameRequest{
		Project:   renameFlagProject,
		Tag:       renameFlagTag,
		SessionID: renameFlagSession,
		To:        renameFlagTo,
	}

	var n int
	err := ctx.Update("rename", func(l *model.Ledger) error {
		var err error
		n, err = ctx.Ledger.Rename(l, req)
		return err
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintUpdated(n)
	}
	ctx.CLIFormatter().PrintUpdated(n)
	return nil
}
