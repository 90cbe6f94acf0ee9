package model

import "time"

// ActiveTimer is the single running timer of the ledger, if any.
type ActiveTimer struct {
	Project string    `json:"project"`
	Tags    []string  `json:"tags"`
	Note    string    `json:"note,omitempty"`
	Start   time.Time `json:"start"`
}

// NewActiveTimer creates a timer started at the given moment.
func NewActiveTimer(project string, tags []string, note string, start time.Time) *ActiveTimer {
	return &ActiveTimer{
		Project: project,
		Tags:    tags,
		Note:    note,
		Start:   TruncateToSecond(start),
	}
}

// Elapsed returns the time since the timer started.
func (a *ActiveTimer) Elapsed(now time.Time) time.Duration {
	return now.Sub(a.Start)
}

// Close turns the timer into a session ending at end.
func (a *ActiveTimer) Close(id string, end time.Time) *Session {
	return NewSession(id, a.Project, a.Tags, a.Note, a.Start, end)
}
