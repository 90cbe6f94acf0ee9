package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/report"
)

// filterFlags are the selection flags shared by report, sessions and export.
type filterFlags struct {
	project string
	tag     string
	from    string
	to      string
	week    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Only sessions of this project")
	cmd.Flags().StringVarP(&f.tag, "tag", "t", "", "Only sessions with this tag")
	cmd.Flags().StringVar(&f.from, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Last day to include (YYYY-MM-DD)")

	cmd.RegisterFlagCompletionFunc("project", completeProjects)
	cmd.RegisterFlagCompletionFunc("tag", completeTags)
}

// registerWeek adds --week for commands that list every session by default.
func (f *filterFlags) registerWeek(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.week, "week", "w", false, "Only sessions started this week (Monday to Sunday)")
	cmd.MarkFlagsMutuallyExclusive("week", "from")
	cmd.MarkFlagsMutuallyExclusive("week", "to")
}

// filter converts the flags. Dates cover whole days: --from starts at
// midnight and --to ends at the last instant of its day.
func (f *filterFlags) filter(all bool) (report.Filter, error) {
	out := report.Filter{Project: f.project, Tag: f.tag, All: all}
	if f.from != "" {
		day, err := parser.ParseDate(f.from)
		if err != nil {
			return out, err
		}
		out.From = parser.StartOfDay(day)
	}
	if f.to != "" {
		day, err := parser.ParseDate(f.to)
		if err != nil {
			return out, err
		}
		out.To = parser.EndOfDay(day)
	}
	return out, out.Validate()
}
