package ledger

import (
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/report"
)

// Report aggregates the sessions selected by f.
func (s *Service) Report(l *model.Ledger, f report.Filter, exact, notes bool) (*report.Report, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	sessions := report.FilterSessions(l.Sessions, f, s.now())
	return report.Build(sessions, report.Options{Exact: exact, Interval: s.Interval, Notes: notes}), nil
}

// ListSessions returns the sessions selected by f ordered by start, then id.
func (s *Service) ListSessions(l *model.Ledger, f report.Filter) ([]*model.Session, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return report.SortByStart(report.FilterSessions(l.Sessions, f, s.now())), nil
}

// ExportRows flattens the sessions selected by f in ledger order.
func (s *Service) ExportRows(l *model.Ledger, f report.Filter) ([]report.Row, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return report.ExportRows(report.FilterSessions(l.Sessions, f, s.now()), s.Interval), nil
}
