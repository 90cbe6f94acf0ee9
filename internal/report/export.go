package report

import (
	"strings"
	"time"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/parser"
)

// Row is a flattened session for tabular exports. SessionTime is the
// rounded duration in decimal hours.
type Row struct {
	ID          string
	Project     string
	Tags        []string
	Note        string
	Start       time.Time
	End         time.Time
	SessionTime float64
}

// JoinedTags returns the tags joined by sep.
func (r Row) JoinedTags(sep string) string {
	return strings.Join(r.Tags, sep)
}

// ExportRows flattens sessions in the given order. Rounding always applies.
func ExportRows(sessions []*model.Session, interval int) []Row {
	rows := make([]Row, 0, len(sessions))
	for _, s := range sessions {
		tags := s.Tags
		if tags == nil {
			tags = []string{}
		}
		rows = append(rows, Row{
			ID:          s.ID,
			Project:     s.Project,
			Tags:        tags,
			Note:        s.Note,
			Start:       s.Start,
			End:         s.End,
			SessionTime: parser.DecimalHours(s.Duration(), interval),
		})
	}
	return rows
}
