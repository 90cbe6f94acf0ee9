package model

import "time"

// Session is a completed, closed interval of tracked work.
type Session struct {
	ID      string    `json:"id"`
	Project string    `json:"project"`
	Tags    []string  `json:"tags"`
	Note    string    `json:"note,omitempty"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Duration returns end - start.
func (s *Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// HasTag reports whether the session carries the given canonical tag.
func (s *Session) HasTag(tag string) bool {
	return hasTag(s.Tags, tag)
}

// IsUntagged returns true if the session has no tags.
func (s *Session) IsUntagged() bool {
	return len(s.Tags) == 0
}

// NewSession creates a session with second-precision timestamps.
func NewSession(id, project string, tags []string, note string, start, end time.Time) *Session {
	return &Session{
		ID:      id,
		Project: project,
		Tags:    tags,
		Note:    note,
		Start:   TruncateToSecond(start),
		End:     TruncateToSecond(end),
	}
}
