package report

import (
	"strings"
	"time"
)

// Default window lengths, in days, when the caller supplies no usable range.
const (
	DefaultReportDays    = 30
	DefaultDashboardDays = 90
)

// Window is an inclusive [From, To] calendar range scoping a report.
type Window struct {
	From time.Time
	To   time.Time
}

// ParseDate parses a YYYY-MM-DD query value. Missing or malformed input
// reads as absent, never as an error.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return DateOnly(t), true
}

// ResolveWindow builds a report window from raw query values. An absent or
// unparseable date_to defaults to today; an absent or unparseable date_from
// defaults to a window of defaultDays ending at date_to.
func ResolveWindow(fromStr, toStr string, defaultDays int) Window {
	to, ok := ParseDate(toStr)
	if !ok {
		to = Today()
	}
	from, ok := ParseDate(fromStr)
	if !ok {
		from = to.AddDate(0, 0, -(defaultDays - 1))
	}
	return Window{From: from, To: to}
}
