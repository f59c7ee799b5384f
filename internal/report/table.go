package report

import (
	"time"

	"photostat/internal/exif"
)

// TimeOfDayOrder is the fixed display order of shooting periods.
var TimeOfDayOrder = []string{
	"Early Morning", "Morning", "Afternoon", "Golden Hour", "Evening", "Night",
}

// WeekdayOrder is the fixed display order of weekdays.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type row struct {
	exif.Record

	date      *time.Time
	dayOfWeek string
	timeOfDay string
}

// Table is an immutable collection of photo records with derived time
// fields, queried by the report methods. Build it once per record set.
type Table struct {
	rows []row
}

func NewTable(records []exif.Record) *Table {
	t := &Table{rows: make([]row, 0, len(records))}
	for _, rec := range records {
		r := row{Record: rec, timeOfDay: "Unknown"}
		if rec.DateTime != nil {
			d := *rec.DateTime
			r.date = &d
			r.dayOfWeek = d.Weekday().String()
			r.timeOfDay = TimeOfDay(d.Hour())
		}
		t.rows = append(t.rows, r)
	}
	return t
}

// TimeOfDay buckets an hour of the day into a shooting period label.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 8:
		return "Early Morning"
	case hour >= 8 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 17:
		return "Afternoon"
	case hour >= 17 && hour < 20:
		return "Golden Hour"
	case hour >= 20 && hour < 23:
		return "Evening"
	default:
		return "Night"
	}
}

func (t *Table) hasDates() bool {
	for i := range t.rows {
		if t.rows[i].date != nil {
			return true
		}
	}
	return false
}
