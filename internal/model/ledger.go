package model

// Ledger is the full persisted state: every completed session plus at most
// one active timer. It is loaded and saved as a unit.
type Ledger struct {
	Active   *ActiveTimer `json:"active"`
	Sessions []*Session   `json:"sessions"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Sessions: []*Session{}}
}

// IsTracking returns true if a timer is running.
func (l *Ledger) IsTracking() bool {
	return l.Active != nil
}

// IDs returns the set of session ids currently in use.
func (l *Ledger) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(l.Sessions))
	for _, s := range l.Sessions {
		ids[s.ID] = struct{}{}
	}
	return ids
}

// FindByID returns the session with the given id, or nil.
func (l *Ledger) FindByID(id string) *Session {
	for _, s := range l.Sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// RemoveWhere drops every session matching fn and returns how many were removed.
// Remaining sessions keep their order.
func (l *Ledger) RemoveWhere(fn func(*Session) bool) int {
	kept := l.Sessions[:0]
	removed := 0
	for _, s := range l.Sessions {
		if fn(s) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(l.Sessions); i++ {
		l.Sessions[i] = nil
	}
	l.Sessions = kept
	return removed
}
