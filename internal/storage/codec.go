package storage

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
)

// wireLedger is the persisted layout:
//
//	{"active": null | {project, tags, note, start},
//	 "sessions": [{id, project, tags, note, start, end}, ...]}
type wireLedger struct {
	Active   *wireTimer    `json:"active"`
	Sessions []wireSession `json:"sessions"`
}

type wireTimer struct {
	Project *string  `json:"project"`
	Tags    []string `json:"tags"`
	Note    *string  `json:"note"`
	Start   *string  `json:"start"`
}

type wireSession struct {
	ID      json.RawMessage `json:"id"`
	Project *string         `json:"project"`
	Tags    []string        `json:"tags"`
	Note    *string         `json:"note"`
	Start   *string         `json:"start"`
	End     *string         `json:"end"`
}

// decodeLedger validates the blob structure and converts it to the model.
// Session ids are copied verbatim; invalid ones come back empty.
func decodeLedger(blob []byte) (*model.Ledger, error) {
	ledger := model.NewLedger()
	if len(bytes.TrimSpace(blob)) == 0 {
		return ledger, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(blob, &top); err != nil {
		return nil, errors.CorruptLedger("expected a JSON object", err)
	}
	if top == nil {
		return nil, errors.CorruptLedger("expected a JSON object", nil)
	}

	if raw, ok := top["active"]; ok && !isNull(raw) {
		if !isKind(raw, '{') {
			return nil, errors.CorruptLedger("'active' must be null or an object", nil)
		}
		var wt wireTimer
		if err := json.Unmarshal(raw, &wt); err != nil {
			return nil, errors.CorruptLedger("invalid active timer", err)
		}
		active, err := wt.toModel()
		if err != nil {
			return nil, err
		}
		ledger.Active = active
	}

	if raw, ok := top["sessions"]; ok && !isNull(raw) {
		if !isKind(raw, '[') {
			return nil, errors.CorruptLedger("'sessions' must be null or an array", nil)
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, errors.CorruptLedger("invalid sessions", err)
		}
		for i, entry := range entries {
			if !isKind(entry, '{') {
				return nil, errors.CorruptLedger(fmt.Sprintf("session %d is not an object", i), nil)
			}
			var ws wireSession
			if err := json.Unmarshal(entry, &ws); err != nil {
				return nil, errors.CorruptLedger(fmt.Sprintf("invalid session %d", i), err)
			}
			session, err := ws.toModel(i)
			if err != nil {
				return nil, err
			}
			ledger.Sessions = append(ledger.Sessions, session)
		}
	}

	return ledger, nil
}

func (wt *wireTimer) toModel() (*model.ActiveTimer, error) {
	if wt.Project == nil {
		return nil, errors.CorruptLedger("active timer has no project", nil)
	}
	start, err := decodeTime("active timer start", wt.Start)
	if err != nil {
		return nil, err
	}
	return &model.ActiveTimer{
		Project: *wt.Project,
		Tags:    nonNilTags(wt.Tags),
		Note:    derefNote(wt.Note),
		Start:   start,
	}, nil
}

func (ws *wireSession) toModel(index int) (*model.Session, error) {
	if ws.Project == nil {
		return nil, errors.CorruptLedger(fmt.Sprintf("session %d has no project", index), nil)
	}
	start, err := decodeTime(fmt.Sprintf("session %d start", index), ws.Start)
	if err != nil {
		return nil, err
	}
	end, err := decodeTime(fmt.Sprintf("session %d end", index), ws.End)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, errors.CorruptLedger(fmt.Sprintf("session %d ends before it starts", index), nil)
	}

	// Non-string ids are kept empty so the repair pass replaces them.
	var id string
	if len(ws.ID) > 0 && isKind(ws.ID, '"') {
		if err := json.Unmarshal(ws.ID, &id); err != nil {
			id = ""
		}
	}

	return &model.Session{
		ID:      id,
		Project: *ws.Project,
		Tags:    nonNilTags(ws.Tags),
		Note:    derefNote(ws.Note),
		Start:   start,
		End:     end,
	}, nil
}

func decodeTime(field string, value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, errors.CorruptLedger(field+" is missing", nil)
	}
	t, err := parser.ParseDateTime(*value)
	if err != nil {
		cause := err
		if ue, ok := errors.AsUserError(err); ok && ue.Cause != nil {
			cause = ue.Cause
		}
		return time.Time{}, errors.CorruptLedger(fmt.Sprintf("%s '%s' is not a timestamp", field, *value), cause)
	}
	return t, nil
}

// encodeLedger serializes the full ledger as indented JSON.
func encodeLedger(ledger *model.Ledger) ([]byte, error) {
	out := wireLedger{Sessions: make([]wireSession, 0, len(ledger.Sessions))}

	if a := ledger.Active; a != nil {
		start := formatTime(a.Start)
		project := a.Project
		out.Active = &wireTimer{
			Project: &project,
			Tags:    nonNilTags(a.Tags),
			Note:    noteOrNull(a.Note),
			Start:   &start,
		}
	}

	for _, s := range ledger.Sessions {
		id, err := json.Marshal(s.ID)
		if err != nil {
			return nil, err
		}
		project := s.Project
		start, end := formatTime(s.Start), formatTime(s.End)
		out.Sessions = append(out.Sessions, wireSession{
			ID:      id,
			Project: &project,
			Tags:    nonNilTags(s.Tags),
			Note:    noteOrNull(s.Note),
			Start:   &start,
			End:     &end,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("encode", "failed to encode ledger", err)
	}
	return append(data, '\n'), nil
}

// formatTime writes RFC3339 with the local offset.
func formatTime(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isKind(raw json.RawMessage, first byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == first
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func derefNote(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}

func noteOrNull(note string) *string {
	if note == "" {
		return nil
	}
	return &note
}
