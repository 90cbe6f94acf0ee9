package output

import (
	"encoding/csv"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/report"
)

// ExportFormat selects the export renderer.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXML  ExportFormat = "xml"
)

// CSVHeader is the column order of CSV exports.
var CSVHeader = []string{"id", "project", "tags", "note", "start", "end", "session_time"}

// ParseExportFormat validates an export --format value.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportJSON, ExportCSV, ExportXML:
		return f, nil
	}
	return "", errors.NewUserErrorWithField(errors.ErrInvalidArgs, "format", s,
		"Invalid export format", "Use one of: json, csv, xml.")
}

// FormatHours renders decimal hours the way exports print them: at least one
// decimal place ("1.0", "0.25").
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	for _, r := range s {
		if r == '.' {
			return s
		}
	}
	return s + ".0"
}

// exportRecord is the JSON shape of one exported session.
type exportRecord struct {
	ID          string   `json:"id"`
	Project     string   `json:"project"`
	Tags        []string `json:"tags"`
	Note        *string  `json:"note"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	SessionTime float64  `json:"session_time"`
}

type xmlSessions struct {
	XMLName  xml.Name     `xml:"sessions"`
	Sessions []xmlSession `xml:"session"`
}

type xmlSession struct {
	ID          string `xml:"id"`
	Project     string `xml:"project"`
	Tags        string `xml:"tags"`
	Note        string `xml:"note"`
	Start       string `xml:"start"`
	End         string `xml:"end"`
	SessionTime string `xml:"session_time"`
}

// Export writes rows to w in the given format.
func Export(w io.Writer, format ExportFormat, rows []report.Row) error {
	switch format {
	case ExportCSV:
		return exportCSV(w, rows)
	case ExportXML:
		return exportXML(w, rows)
	default:
		return exportJSON(w, rows)
	}
}

func exportJSON(w io.Writer, rows []report.Row) error {
	records := make([]exportRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, exportRecord{
			ID:          r.ID,
			Project:     r.Project,
			Tags:        r.Tags,
			Note:        optional(r.Note),
			Start:       FormatISO(r.Start),
			End:         FormatISO(r.End),
			SessionTime: r.SessionTime,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func exportCSV(w io.Writer, rows []report.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.ID,
			r.Project,
			r.JoinedTags(";"),
			r.Note,
			FormatISO(r.Start),
			FormatISO(r.End),
			FormatHours(r.SessionTime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportXML(w io.Writer, rows []report.Row) error {
	doc := xmlSessions{Sessions: make([]xmlSession, 0, len(rows))}
	for _, r := range rows {
		doc.Sessions = append(doc.Sessions, xmlSession{
			ID:          r.ID,
			Project:     r.Project,
			Tags:        r.JoinedTags(","),
			Note:        r.Note,
			Start:       FormatISO(r.Start),
			End:         FormatISO(r.End),
			SessionTime: FormatHours(r.SessionTime),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
