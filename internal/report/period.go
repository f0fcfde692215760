// Package report implements the reporting engine: period bucketing,
// in-memory aggregation of transaction sets, and the chart/CSV products
// built from them. Everything here is pure; the handlers feed it rows
// loaded from the store.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Bucket selects the granularity of a dashboard time series.
type Bucket string

const (
	BucketWeekly  Bucket = "weekly"
	BucketMonthly Bucket = "monthly"
)

// ParseBucket maps a raw query value onto a Bucket. Unknown values fall
// back to weekly rather than erroring.
func ParseBucket(s string) Bucket {
	if Bucket(strings.ToLower(strings.TrimSpace(s))) == BucketMonthly {
		return BucketMonthly
	}
	return BucketWeekly
}

// Anchor maps a date to the first day of its bucket: the Monday on or
// before d for weekly buckets, the first of d's month for monthly.
func (b Bucket) Anchor(d time.Time) time.Time {
	d = DateOnly(d)
	if b == BucketMonthly {
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	iso := int(d.Weekday())
	if iso == 0 { // time.Sunday is 0, ISO weekday 7
		iso = 7
	}
	return d.AddDate(0, 0, -(iso - 1))
}

// Periods returns every anchor covering [start, end] inclusive, in order,
// with no gaps. The bounds may be given in either order. The first anchor
// is at or before start; the last is the anchor containing end.
func (b Bucket) Periods(start, end time.Time) []time.Time {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		start, end = end, start
	}
	var anchors []time.Time
	for cur := b.Anchor(start); !cur.After(end); cur = b.step(cur) {
		anchors = append(anchors, cur)
	}
	return anchors
}

func (b Bucket) step(anchor time.Time) time.Time {
	if b == BucketMonthly {
		return anchor.AddDate(0, 1, 0) // first of next month; year rollover handled
	}
	return anchor.AddDate(0, 0, 7)
}

// Label renders an anchor for chart axes: "2025-W40" (ISO year and week)
// for weekly buckets, "2025-10" for monthly.
func (b Bucket) Label(anchor time.Time) string {
	if b == BucketMonthly {
		return anchor.Format("2006-01")
	}
	year, week := anchor.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// DateOnly truncates t to midnight UTC so calendar dates compare cleanly
// regardless of the zone they were parsed in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return DateOnly(time.Now())
}
