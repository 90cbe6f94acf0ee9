package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/report"
)

// Styles for CLI output.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleProject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTag = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleDuration = lipgloss.NewStyle().
			Bold(true)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

const (
	reportRule   = 40
	sessionsRule = 80
)

// CLIFormatter renders human-readable output, colored when enabled.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) style(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.style(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.style(styleSuccess, text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.style(styleWarning, text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.style(styleError, text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.style(styleMuted, text))
}

// ProjectName formats a project name.
func (c *CLIFormatter) ProjectName(name string) string {
	return c.style(styleProject, name)
}

// TagList formats tags as "a, b", or fallback when there are none.
func (c *CLIFormatter) TagList(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	return c.style(styleTag, strings.Join(tags, ", "))
}

// Duration formats a duration string.
func (c *CLIFormatter) Duration(text string) string {
	return c.style(styleDuration, text)
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.style(styleNote, text)
}

// PrintStarted confirms a new timer using the project name as typed.
func (c *CLIFormatter) PrintStarted(rawProject string) {
	c.Success(fmt.Sprintf("Started timer for project '%s'.", rawProject))
}

// PrintStopped confirms a stopped timer.
func (c *CLIFormatter) PrintStopped(s *model.Session) {
	c.Success(fmt.Sprintf("Stopped timer for project '%s' (session #%s, %.2f minutes).",
		s.Project, s.ID, s.Duration().Minutes()))
}

// PrintAdded confirms a manually added session.
func (c *CLIFormatter) PrintAdded(s *model.Session) {
	c.Success(fmt.Sprintf("Added session #%s for project '%s' from %s to %s.",
		s.ID, s.Project, FormatTime(s.Start), FormatTime(s.End)))
}

// PrintStatus prints the running timer, or a notice when idle.
func (c *CLIFormatter) PrintStatus(status *ledger.Status) {
	if status == nil {
		c.Println("No active timer.")
		return
	}

	t := status.Timer
	ago := humanize.RelTime(t.Start, t.Start.Add(status.Elapsed), "ago", "from now")
	c.Printf("Project %s (%s) started %s (%s)\n",
		c.ProjectName(t.Project), c.TagList(t.Tags, "untagged"), ago, FormatStatusTime(t.Start))
	if t.Note != "" {
		c.Printf("  Note: %s\n", c.Note(t.Note))
	}
}

// PrintReport prints per-project and per-tag totals.
func (c *CLIFormatter) PrintReport(r *report.Report) {
	if r.Empty() {
		c.Println("No sessions found.")
		return
	}

	c.Title("Project report")
	c.Printf("Date range: %s -> %s\n", FormatTime(r.Earliest), FormatTime(r.Latest))
	c.Println(strings.Repeat("=", reportRule))
	for _, p := range r.Projects {
		c.Println(c.ProjectName(p.Project))
		for _, tag := range p.Tags {
			c.Printf("  - %-16s %s\n", tag.Tag, FormatTotal(tag.Total, r.Exact))
		}
		c.Printf("  %-18s %s\n", "Project total:", c.Duration(FormatTotal(p.Total, r.Exact)))
		c.Println(strings.Repeat("-", reportRule))
	}
	c.Printf("%-20s %s\n", "GRAND TOTAL", c.Duration(FormatTotal(r.GrandTotal, r.Exact)))

	if len(r.Notes) > 0 {
		c.Println()
		c.Title("Notes")
		for _, s := range r.Notes {
			c.Printf("  %s  %-16s %s\n", FormatTime(s.Start), s.Project, c.Note(s.Note))
		}
	}
}

// PrintSessions prints one line per session.
func (c *CLIFormatter) PrintSessions(sessions []*model.Session, interval int) {
	if len(sessions) == 0 {
		c.Println("No sessions found.")
		return
	}

	c.Title("Sessions")
	c.Println(strings.Repeat("=", sessionsRule))
	for _, s := range sessions {
		tags := "(untagged)"
		if len(s.Tags) > 0 {
			tags = strings.Join(s.Tags, ", ")
		}
		line := fmt.Sprintf("%s  %-16s %-20s %s -> %s %s session_time=%s %s",
			s.ID, s.Project, tags, FormatTime(s.Start), FormatTime(s.End),
			parser.FormatHMS(s.Duration()), FormatHours(parser.DecimalHours(s.Duration(), interval)), s.Note)
		c.Println(strings.TrimRight(line, " "))
	}
}

// PrintDeleted reports how many sessions were removed.
func (c *CLIFormatter) PrintDeleted(n int) {
	c.Success(fmt.Sprintf("Deleted %d session(s).", n))
}

// PrintUpdated reports how many sessions were renamed.
func (c *CLIFormatter) PrintUpdated(n int) {
	c.Success(fmt.Sprintf("Updated %d session(s).", n))
}

// PrintExported confirms an export written to a file.
func (c *CLIFormatter) PrintExported(n int, path string, format ExportFormat) {
	c.Success(fmt.Sprintf("Exported %d sessions to %s (%s).", n, path, format))
}

// PrintSettings prints key/value pairs in the given order.
func (c *CLIFormatter) PrintSettings(settings []Setting) {
	width := 0
	for _, s := range settings {
		width = max(width, len(s.Key))
	}
	for _, s := range settings {
		c.Printf("%-*s  %v\n", width, s.Key, s.Value)
	}
}

// PrintBackups lists backup files with their sizes.
func (c *CLIFormatter) PrintBackups(backups []Backup) {
	if len(backups) == 0 {
		c.Muted("No backups found.")
		return
	}
	for _, b := range backups {
		c.Printf("%s  %8s  %s\n", FormatTime(b.ModTime), humanize.Bytes(uint64(b.Size)), b.Path)
	}
}

// PrintRestored confirms a restore and where the replaced ledger went.
func (c *CLIFormatter) PrintRestored(source, previous string, sessions int) {
	c.Success(fmt.Sprintf("Restored %d session(s) from %s.", sessions, source))
	if previous != "" {
		c.Muted("Previous ledger saved to " + previous)
	}
}
