// Package cmd provides the CLI commands for track.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/report"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for track.

To load completions:

Bash:
  $ source <(track completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ track completion bash > /etc/bash_completion.d/track
  # macOS:
  $ track completion bash > $(brew --prefix)/etc/bash_completion.d/track

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ track completion zsh > "${fpath[1]}/_track"

Fish:
  $ track completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// ensureContext builds the runtime context when completion runs without
// the persistent hooks.
func ensureContext(cmd *cobra.Command) bool {
	if ctx == nil {
		if err := initContext(cmd, nil); err != nil {
			return false
		}
	}
	return ctx != nil
}

// knownNames loads the project and tag names in the ledger for completion.
// Any failure yields no suggestions.
func knownNames(cmd *cobra.Command) (projects, tags map[string]struct{}) {
	if !ensureContext(cmd) {
		return nil, nil
	}
	_ = ctx.View("complete", func(l *model.Ledger) error {
		projects, tags = report.CollectKnownNames(l.Sessions, l.Active)
		return nil
	})
	return projects, tags
}

func matching(names map[string]struct{}, prefix string) []string {
	var out []string
	for name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// completeProjects completes --project values from the ledger.
func completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	projects, _ := knownNames(cmd)
	return matching(projects, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeTags completes --tag values from the ledger.
func completeTags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	_, tags := knownNames(cmd)
	return matching(tags, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSessionIDs completes --session values with "id\tproject" pairs.
func completeSessionIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if !ensureContext(cmd) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	_ = ctx.View("complete", func(l *model.Ledger) error {
		for _, s := range l.Sessions {
			if strings.HasPrefix(s.ID, toComplete) {
				out = append(out, s.ID+"\t"+s.Project)
			}
		}
		return nil
	})
	return out, cobra.ShellCompDirectiveNoFileComp
}
