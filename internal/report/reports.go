package report

import (
	"math"
	"sort"
	"time"
)

// UsageRow is one camera or lens with its share of all photos.
type UsageRow struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CountRow is one numeric setting value with its photo count.
type CountRow struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// LabelCount is one fixed category with its photo count.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Bucket is one calendar period of the shooting timeline.
type Bucket struct {
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// GPSPhoto is one geotagged photo.
type GPSPhoto struct {
	Filename  string    `json:"filename"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
}

// CameraUsage counts photos per camera model, most used first.
func (t *Table) CameraUsage() []UsageRow {
	return t.usage(func(r *row) *string { return r.CameraModel })
}

// LensUsage counts photos per lens, most used first.
func (t *Table) LensUsage() []UsageRow {
	return t.usage(func(r *row) *string { return r.Lens })
}

func (t *Table) usage(field func(*row) *string) []UsageRow {
	counts := map[string]int{}
	var order []string
	for i := range t.rows {
		v := field(&t.rows[i])
		if v == nil {
			continue
		}
		if _, seen := counts[*v]; !seen {
			order = append(order, *v)
		}
		counts[*v]++
	}
	if len(counts) == 0 {
		return nil
	}

	total := float64(len(t.rows))
	rows := make([]UsageRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, UsageRow{
			Name:       name,
			Count:      counts[name],
			Percentage: math.Round(float64(counts[name])/total*1000) / 10,
		})
	}
	// ties keep first-seen order
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

// ISODistribution counts photos per ISO value, ascending.
func (t *Table) ISODistribution() []CountRow {
	return t.distribution(func(r *row) (float64, bool) {
		if r.ISO == nil {
			return 0, false
		}
		return float64(*r.ISO), true
	})
}

// ApertureDistribution counts photos per f-number, ascending.
func (t *Table) ApertureDistribution() []CountRow {
	return t.distribution(func(r *row) (float64, bool) {
		if r.Aperture == nil {
			return 0, false
		}
		return *r.Aperture, true
	})
}

// FocalLengthDistribution counts photos per focal length, ascending.
func (t *Table) FocalLengthDistribution() []CountRow {
	return t.distribution(func(r *row) (float64, bool) {
		if r.FocalLength == nil {
			return 0, false
		}
		return *r.FocalLength, true
	})
}

func (t *Table) distribution(field func(*row) (float64, bool)) []CountRow {
	counts := map[float64]int{}
	for i := range t.rows {
		if v, ok := field(&t.rows[i]); ok {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	rows := make([]CountRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, CountRow{Value: v, Count: counts[v]})
	}
	return rows
}

// TimeOfDayDistribution counts photos per shooting period, always
// returning all six periods in fixed order.
func (t *Table) TimeOfDayDistribution() []LabelCount {
	if !t.hasDates() {
		return nil
	}
	counts := map[string]int{}
	for i := range t.rows {
		counts[t.rows[i].timeOfDay]++
	}
	return reindex(TimeOfDayOrder, counts)
}

// DayOfWeekDistribution counts photos per weekday, always returning
// all seven days Monday through Sunday.
func (t *Table) DayOfWeekDistribution() []LabelCount {
	if !t.hasDates() {
		return nil
	}
	counts := map[string]int{}
	for i := range t.rows {
		if t.rows[i].date != nil {
			counts[t.rows[i].dayOfWeek]++
		}
	}
	return reindex(WeekdayOrder, counts)
}

// reindex projects counts onto a fixed category order, filling
// missing categories with zero. Categories outside order are dropped.
func reindex(order []string, counts map[string]int) []LabelCount {
	rows := make([]LabelCount, 0, len(order))
	for _, label := range order {
		rows = append(rows, LabelCount{Label: label, Count: counts[label]})
	}
	return rows
}

// OrientationStats counts portrait and landscape photos.
func (t *Table) OrientationStats() map[string]int {
	out := map[string]int{}
	if len(t.rows) == 0 {
		return out
	}
	out["portrait"] = 0
	out["landscape"] = 0
	for i := range t.rows {
		out[t.rows[i].Orientation]++
	}
	return out
}

// FlashUsageStats counts photos taken with and without flash.
func (t *Table) FlashUsageStats() map[string]int {
	out := map[string]int{}
	used, notUsed, present := 0, 0, false
	for i := range t.rows {
		if t.rows[i].FlashUsed == nil {
			continue
		}
		present = true
		if *t.rows[i].FlashUsed {
			used++
		} else {
			notUsed++
		}
	}
	if !present {
		return out
	}
	out["used"] = used
	out["not_used"] = notUsed
	return out
}

// GPSPhotos lists every photo that has both coordinates and a date.
func (t *Table) GPSPhotos() []GPSPhoto {
	var photos []GPSPhoto
	for i := range t.rows {
		r := &t.rows[i]
		if r.Latitude == nil || r.Longitude == nil || r.date == nil {
			continue
		}
		photos = append(photos, GPSPhoto{
			Filename:  r.Filename,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Date:      *r.date,
		})
	}
	return photos
}
