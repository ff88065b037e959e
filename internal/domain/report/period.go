// Package report holds the pure domain services for monthly cost reporting:
// period parsing and unit-cost resolution. No I/O, no external state.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/onu-facilities/partstrack/internal/domain"
)

const minYear = 1900

// Period is a calendar month a report is computed for.
type Period struct {
	Month time.Month
	Year  int
}

// ParsePeriod parses a "MM/YYYY" string. Month must be 1-12 and year >= 1900.
// Returns domain.ErrInvalidInput (wrapped) on anything else.
func ParsePeriod(s string) (Period, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: month must be MM/YYYY, got %q", domain.ErrInvalidInput, s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month number out of range in %q", domain.ErrInvalidInput, s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < minYear {
		return Period{}, fmt.Errorf("%w: year out of range in %q", domain.ErrInvalidInput, s)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// Bounds returns the inclusive report range: the 1st at 00:00:00.000 through
// the last calendar day at 23:59:59.999, using the month's real length.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// Days returns the number of calendar days in the period's month.
func (p Period) Days() int {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 1, -1).Day()
}

// String renders the period back as "MM/YYYY".
func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", int(p.Month), p.Year)
}

// Label returns a readable form for report titles, e.g. "April 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}
