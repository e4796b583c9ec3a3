package domain

import "fmt"

// ReportKind selects a report generator.
type ReportKind string

const (
	ReportDaily     ReportKind = "daily"
	ReportWeekly    ReportKind = "weekly"
	ReportMonthly   ReportKind = "monthly"
	ReportQuarterly ReportKind = "quarterly"
	ReportRange     ReportKind = "range"
)

// ReportRequest describes the period a report covers.
// Only the fields of Kind are used.
// Fields are ordered to minimize memory padding.
type ReportRequest struct {
	Kind    ReportKind
	Date    DateKey     // ReportDaily
	Start   DateKey     // ReportRange
	End     DateKey     // ReportRange
	Week    YearWeekKey // ReportWeekly
	Year    int         // ReportMonthly, ReportQuarterly
	Month   int         // ReportMonthly
	Quarter int         // ReportQuarterly
}

// Validate checks the fields of the request's kind.
func (r ReportRequest) Validate() error {
	switch r.Kind {
	case ReportDaily:
		if _, err := ParseDateKey(r.Date.Date); err != nil {
			return err
		}
	case ReportWeekly:
		if r.Week.Week < 1 || r.Week.Week > ISOWeeksInYear(r.Week.Year) {
			return fmt.Errorf("week %s: %w", r.Week, ErrInvalidPeriod)
		}
	case ReportMonthly:
		if r.Year < 1 || r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("month %d-%02d: %w", r.Year, r.Month, ErrInvalidPeriod)
		}
	case ReportQuarterly:
		if r.Year < 1 || r.Quarter < 1 || r.Quarter > 4 {
			return fmt.Errorf("quarter %d-Q%d: %w", r.Year, r.Quarter, ErrInvalidPeriod)
		}
	case ReportRange:
		if r.Start.Date == "" || r.End.Date == "" {
			return fmt.Errorf("start and end are required: %w", ErrInvalidRange)
		}
		if _, err := ParseDateKey(r.Start.Date); err != nil {
			return err
		}
		if _, err := ParseDateKey(r.End.Date); err != nil {
			return err
		}
		if r.Start.Time().After(r.End.Time()) {
			return fmt.Errorf("start %s after end %s: %w", r.Start, r.End, ErrInvalidRange)
		}
	default:
		return fmt.Errorf("report kind %q: %w", r.Kind, ErrInvalidPeriod)
	}
	return nil
}
