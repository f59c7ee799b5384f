package report

import (
	"fmt"
	"time"
)

// Granularity selects the calendar bucket size of the timeline.
type Granularity string

const (
	Daily   Granularity = "day"
	Weekly  Granularity = "week"
	Monthly Granularity = "month"
	Yearly  Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("invalid timeline granularity %q (want day, week, month or year)", s)
}

// Timeline counts photos per calendar bucket over the observed date
// span. Buckets inside the span with no photos are included with a
// zero count, so the result is a continuous calendar.
func (t *Table) Timeline(g Granularity) []Bucket {
	counts := map[time.Time]int{}
	var first, last time.Time
	for i := range t.rows {
		if t.rows[i].date == nil {
			continue
		}
		b := truncate(*t.rows[i].date, g)
		if len(counts) == 0 || b.Before(first) {
			first = b
		}
		if len(counts) == 0 || b.After(last) {
			last = b
		}
		counts[b]++
	}
	if len(counts) == 0 {
		return nil
	}

	var buckets []Bucket
	for b := first; !b.After(last); b = next(b, g) {
		buckets = append(buckets, Bucket{Start: b, Count: counts[b]})
	}
	return buckets
}

// truncate floors a time to the start of its bucket. Weeks start on
// Monday.
func truncate(tm time.Time, g Granularity) time.Time {
	y, m, d := tm.Date()
	switch g {
	case Weekly:
		day := time.Date(y, m, d, 0, 0, 0, 0, tm.Location())
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, tm.Location())
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, tm.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, tm.Location())
	}
}

func next(tm time.Time, g Granularity) time.Time {
	switch g {
	case Weekly:
		return tm.AddDate(0, 0, 7)
	case Monthly:
		return tm.AddDate(0, 1, 0)
	case Yearly:
		return tm.AddDate(1, 0, 0)
	default:
		return tm.AddDate(0, 0, 1)
	}
}
