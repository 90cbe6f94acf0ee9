package output

import (
	"time"

	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/report"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// Setting is one configuration key and its effective value.
type Setting struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Backup describes a ledger backup file.
type Backup struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// TimerOutput represents the active timer in JSON output.
type TimerOutput struct {
	Project        string   `json:"project"`
	Tags           []string `json:"tags"`
	Note           *string  `json:"note"`
	Start          string   `json:"start"`
	ElapsedSeconds int64    `json:"elapsed_seconds"`
}

// NewTimerOutput creates a TimerOutput from an ActiveTimer.
func NewTimerOutput(t *model.ActiveTimer, elapsed time.Duration) *TimerOutput {
	return &TimerOutput{
		Project:        t.Project,
		Tags:           nonNil(t.Tags),
		Note:           optional(t.Note),
		Start:          FormatISO(t.Start),
		ElapsedSeconds: int64(elapsed.Seconds()),
	}
}

// SessionOutput represents a session in JSON output.
type SessionOutput struct {
	ID              string   `json:"id"`
	Project         string   `json:"project"`
	Tags            []string `json:"tags"`
	Note            *string  `json:"note"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	DurationSeconds int64    `json:"duration_seconds"`
	SessionTime     float64  `json:"session_time"`
}

// NewSessionOutput creates a SessionOutput; SessionTime is rounded to interval.
func NewSessionOutput(s *model.Session, interval int) *SessionOutput {
	return &SessionOutput{
		ID:              s.ID,
		Project:         s.Project,
		Tags:            nonNil(s.Tags),
		Note:            optional(s.Note),
		Start:           FormatISO(s.Start),
		End:             FormatISO(s.End),
		DurationSeconds: int64(s.Duration().Seconds()),
		SessionTime:     parser.DecimalHours(s.Duration(), interval),
	}
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	Status string       `json:"status"`
	Active *TimerOutput `json:"active"`
}

// TimerResponse is returned by start.
type TimerResponse struct {
	Status string       `json:"status"`
	Active *TimerOutput `json:"active"`
}

// SessionResponse is returned by stop and add.
type SessionResponse struct {
	Status  string         `json:"status"`
	Session *SessionOutput `json:"session"`
}

// CountResponse is returned by delete and rename.
type CountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Kind       string `json:"kind,omitempty"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// TagTotalOutput is one tag row of a report.
type TagTotalOutput struct {
	Tag          string `json:"tag"`
	TotalSeconds int64  `json:"total_seconds"`
	Display      string `json:"display"`
}

// ProjectTotalOutput is one project block of a report.
type ProjectTotalOutput struct {
	Project      string            `json:"project"`
	TotalSeconds int64             `json:"total_seconds"`
	Display      string            `json:"display"`
	Tags         []*TagTotalOutput `json:"tags"`
}

// ReportResponse represents a report in JSON.
type ReportResponse struct {
	From              string                `json:"from,omitempty"`
	To                string                `json:"to,omitempty"`
	Exact             bool                  `json:"exact"`
	IntervalMinutes   int                   `json:"interval_minutes"`
	Projects          []*ProjectTotalOutput `json:"projects"`
	GrandTotalSeconds int64                 `json:"grand_total_seconds"`
	GrandTotal        string                `json:"grand_total"`
	Notes             []*SessionOutput      `json:"notes,omitempty"`
}

// NewReportResponse converts a report.
func NewReportResponse(r *report.Report) *ReportResponse {
	resp := &ReportResponse{
		Exact:             r.Exact,
		IntervalMinutes:   r.Interval,
		Projects:          []*ProjectTotalOutput{},
		GrandTotalSeconds: int64(r.GrandTotal.Seconds()),
		GrandTotal:        FormatTotal(r.GrandTotal, r.Exact),
	}
	if !r.Empty() {
		resp.From = FormatISO(r.Earliest)
		resp.To = FormatISO(r.Latest)
	}

	for _, p := range r.Projects {
		out := &ProjectTotalOutput{
			Project:      p.Project,
			TotalSeconds: int64(p.Total.Seconds()),
			Display:      FormatTotal(p.Total, r.Exact),
			Tags:         make([]*TagTotalOutput, 0, len(p.Tags)),
		}
		for _, t := range p.Tags {
			out.Tags = append(out.Tags, &TagTotalOutput{
				Tag:          t.Tag,
				TotalSeconds: int64(t.Total.Seconds()),
				Display:      FormatTotal(t.Total, r.Exact),
			})
		}
		resp.Projects = append(resp.Projects, out)
	}

	for _, s := range r.Notes {
		resp.Notes = append(resp.Notes, NewSessionOutput(s, r.Interval))
	}
	return resp
}

// SessionsResponse represents the sessions list in JSON.
type SessionsResponse struct {
	Sessions   []*SessionOutput `json:"sessions"`
	TotalCount int              `json:"total_count"`
}

// PrintStatus outputs status in JSON format.
func (j *JSONFormatter) PrintStatus(status *ledger.Status) error {
	resp := StatusResponse{Status: "idle"}
	if status != nil {
		resp.Status = "tracking"
		resp.Active = NewTimerOutput(status.Timer, status.Elapsed)
	}
	return j.JSON(resp)
}

// PrintStarted outputs the new timer.
func (j *JSONFormatter) PrintStarted(t *model.ActiveTimer) error {
	return j.JSON(TimerResponse{Status: "started", Active: NewTimerOutput(t, 0)})
}

// PrintStopped outputs the session created by stop.
func (j *JSONFormatter) PrintStopped(s *model.Session, interval int) error {
	return j.JSON(SessionResponse{Status: "stopped", Session: NewSessionOutput(s, interval)})
}

// PrintAdded outputs the session created by add.
func (j *JSONFormatter) PrintAdded(s *model.Session, interval int) error {
	return j.JSON(SessionResponse{Status: "added", Session: NewSessionOutput(s, interval)})
}

// PrintDeleted outputs the number of removed sessions.
func (j *JSONFormatter) PrintDeleted(n int) error {
	return j.JSON(CountResponse{Status: "deleted", Count: n})
}

// PrintUpdated outputs the number of renamed sessions.
func (j *JSONFormatter) PrintUpdated(n int) error {
	return j.JSON(CountResponse{Status: "updated", Count: n})
}

// PrintReport outputs a report.
func (j *JSONFormatter) PrintReport(r *report.Report) error {
	return j.JSON(NewReportResponse(r))
}

// PrintSessions outputs a list of sessions.
func (j *JSONFormatter) PrintSessions(sessions []*model.Session, interval int) error {
	resp := SessionsResponse{
		Sessions:   make([]*SessionOutput, 0, len(sessions)),
		TotalCount: len(sessions),
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, NewSessionOutput(s, interval))
	}
	return j.JSON(resp)
}

// PrintSettings outputs configuration as an ordered list.
func (j *JSONFormatter) PrintSettings(settings []Setting) error {
	return j.JSON(map[string]any{"settings": settings})
}

// PrintBackups outputs backup files.
func (j *JSONFormatter) PrintBackups(backups []Backup) error {
	if backups == nil {
		backups = []Backup{}
	}
	return j.JSON(map[string]any{"backups": backups})
}

// RestoreResponse represents a restored backup in JSON.
type RestoreResponse struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Previous string `json:"previous_backup,omitempty"`
	Sessions int    `json:"sessions"`
}

// PrintRestored outputs the result of a restore.
func (j *JSONFormatter) PrintRestored(source, previous string, sessions int) error {
	return j.JSON(RestoreResponse{Status: "restored", Source: source, Previous: previous, Sessions: sessions})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(kind, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Kind:       kind,
		Error:      message,
		Suggestion: suggestion,
	})
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
