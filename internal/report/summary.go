package report

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the whole collection into one report.
type Summary struct {
	TotalPhotos   int `json:"total_photos"`
	UniqueCameras int `json:"unique_cameras"`
	UniqueLenses  int `json:"unique_lenses"`
	PhotosWithGPS int `json:"photos_with_gps"`

	DateRange        *DateRange  `json:"date_range,omitempty"`
	ISOStats         *IntStats   `json:"iso_stats,omitempty"`
	ApertureStats    *FloatStats `json:"aperture_stats,omitempty"`
	FocalLengthStats *FloatStats `json:"focal_length_stats,omitempty"`
}

type DateRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
	SpanDays int       `json:"span_days"`
}

type IntStats struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Mean   int `json:"mean"`
	Median int `json:"median"`
}

type FloatStats struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	MostCommon float64 `json:"most_common"`
}

func (t *Table) Summary() Summary {
	s := Summary{
		TotalPhotos:   len(t.rows),
		UniqueCameras: t.distinct(func(r *row) *string { return r.CameraModel }),
		UniqueLenses:  t.distinct(func(r *row) *string { return r.Lens }),
	}

	var dates []time.Time
	var isoVals, apertureVals, focalVals []float64
	for i := range t.rows {
		r := &t.rows[i]
		if r.Latitude != nil {
			s.PhotosWithGPS++
		}
		if r.date != nil {
			dates = append(dates, *r.date)
		}
		if r.ISO != nil {
			isoVals = append(isoVals, float64(*r.ISO))
		}
		if r.Aperture != nil {
			apertureVals = append(apertureVals, *r.Aperture)
		}
		if r.FocalLength != nil {
			focalVals = append(focalVals, *r.FocalLength)
		}
	}

	if len(dates) > 0 {
		earliest, latest := dates[0], dates[0]
		for _, d := range dates[1:] {
			if d.Before(earliest) {
				earliest = d
			}
			if d.After(latest) {
				latest = d
			}
		}
		s.DateRange = &DateRange{
			Earliest: earliest,
			Latest:   latest,
			SpanDays: int(latest.Sub(earliest).Hours() / 24),
		}
	}

	if len(isoVals) > 0 {
		min, _ := stats.Min(isoVals)
		max, _ := stats.Max(isoVals)
		mean, _ := stats.Mean(isoVals)
		median, _ := stats.Median(isoVals)
		s.ISOStats = &IntStats{
			Min:    int(min),
			Max:    int(max),
			Mean:   int(mean),
			Median: int(median),
		}
	}

	s.ApertureStats = floatStats(apertureVals)
	s.FocalLengthStats = floatStats(focalVals)
	return s
}

func (t *Table) distinct(field func(*row) *string) int {
	seen := map[string]bool{}
	for i := range t.rows {
		if v := field(&t.rows[i]); v != nil {
			seen[*v] = true
		}
	}
	return len(seen)
}

func floatStats(vals []float64) *FloatStats {
	if len(vals) == 0 {
		return nil
	}
	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	return &FloatStats{Min: min, Max: max, MostCommon: mostCommon(vals)}
}

// mostCommon is the smallest mode of vals. When every value occurs
// equally often the minimum wins, the same element a sorted
// multi-mode would put first.
func mostCommon(vals []float64) float64 {
	modes, err := stats.Mode(vals)
	if err == nil && len(modes) > 0 {
		m, _ := stats.Min(modes)
		return m
	}
	m, _ := stats.Min(vals)
	return m
}
