package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"photostat/internal/report"
)

func printReports(t *report.Table, g report.Granularity) error {
	s := t.Summary()
	fmt.Printf("\nSummary\n-------\n")
	fmt.Printf("total photos:    %d\n", s.TotalPhotos)
	fmt.Printf("unique cameras:  %d\n", s.UniqueCameras)
	fmt.Printf("unique lenses:   %d\n", s.UniqueLenses)
	fmt.Printf("photos with gps: %d\n", s.PhotosWithGPS)
	if s.DateRange != nil {
		fmt.Printf("date range:      %s - %s (%d days)\n",
			s.DateRange.Earliest.Format("2006-01-02"),
			s.DateRange.Latest.Format("2006-01-02"),
			s.DateRange.SpanDays)
	}
	if s.ISOStats != nil {
		fmt.Printf("iso:             min %d, max %d, mean %d, median %d\n",
			s.ISOStats.Min, s.ISOStats.Max, s.ISOStats.Mean, s.ISOStats.Median)
	}
	if s.ApertureStats != nil {
		fmt.Printf("aperture:        min f/%.1f, max f/%.1f, most common f/%.1f\n",
			s.ApertureStats.Min, s.ApertureStats.Max, s.ApertureStats.MostCommon)
	}
	if s.FocalLengthStats != nil {
		fmt.Printf("focal length:    min %.1fmm, max %.1fmm, most common %.1fmm\n",
			s.FocalLengthStats.Min, s.FocalLengthStats.Max, s.FocalLengthStats.MostCommon)
	}

	if rows := t.CameraUsage(); len(rows) > 0 {
		printTable("Camera usage", []string{"camera", "photos", "percent"}, usageRows(rows))
	}
	if rows := t.LensUsage(); len(rows) > 0 {
		printTable("Lens usage", []string{"lens", "photos", "percent"}, usageRows(rows))
	}
	if rows := t.ISODistribution(); len(rows) > 0 {
		printTable("ISO distribution", []string{"iso", "photos"}, countRows(rows, "%.0f"))
	}
	if rows := t.ApertureDistribution(); len(rows) > 0 {
		printTable("Aperture distribution", []string{"f-number", "photos"}, countRows(rows, "%.1f"))
	}
	if rows := t.FocalLengthDistribution(); len(rows) > 0 {
		printTable("Focal length distribution", []string{"mm", "photos"}, countRows(rows, "%.1f"))
	}
	if buckets := t.Timeline(g); len(buckets) > 0 {
		rows := make([][]string, 0, len(buckets))
		for _, b := range buckets {
			rows = append(rows, []string{b.Start.Format("2006-01-02"), fmt.Sprintf("%d", b.Count)})
		}
		printTable(fmt.Sprintf("Timeline (per %s)", g), []string{"period", "photos"}, rows)
	}
	if rows := t.TimeOfDayDistribution(); len(rows) > 0 {
		printTable("Time of day", []string{"period", "photos"}, labelRows(rows))
	}
	if rows := t.DayOfWeekDistribution(); len(rows) > 0 {
		printTable("Day of week", []string{"day", "photos"}, labelRows(rows))
	}
	if counts := t.OrientationStats(); len(counts) > 0 {
		fmt.Printf("\nOrientation: %d portrait, %d landscape\n", counts["portrait"], counts["landscape"])
	}
	if counts := t.FlashUsageStats(); len(counts) > 0 {
		fmt.Printf("Flash: %d used, %d not used\n", counts["used"], counts["not_used"])
	}
	if photos := t.GPSPhotos(); len(photos) > 0 {
		rows := make([][]string, 0, len(photos))
		for _, p := range photos {
			rows = append(rows, []string{
				p.Filename,
				fmt.Sprintf("%.5f", p.Latitude),
				fmt.Sprintf("%.5f", p.Longitude),
				p.Date.Format(time.DateOnly),
			})
		}
		printTable("Geotagged photos", []string{"file", "latitude", "longitude", "date"}, rows)
	}
	return nil
}

func usageRows(rows []report.UsageRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Name, fmt.Sprintf("%d", r.Count), fmt.Sprintf("%.1f%%", r.Percentage)})
	}
	return out
}

func countRows(rows []report.CountRow, format string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{fmt.Sprintf(format, r.Value), fmt.Sprintf("%d", r.Count)})
	}
	return out
}

func labelRows(rows []report.LabelCount) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Label, fmt.Sprintf("%d", r.Count)})
	}
	return out
}

func printTable(title string, cols []string, rows [][]string) {
	fmt.Printf("\n%s\n", title)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, col := range cols {
		fmt.Fprintf(w, "%s\t", col)
	}
	fmt.Fprintln(w)

	for _, col := range cols {
		fmt.Fprintf(w, "%s\t", strings.Repeat("-", len(col)))
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for _, val := range row {
			fmt.Fprintf(w, "%s\t", val)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printJSON(t *report.Table, g report.Granularity) error {
	out := map[string]any{
		"summary":                   t.Summary(),
		"camera_usage":              t.CameraUsage(),
		"lens_usage":                t.LensUsage(),
		"iso_distribution":          t.ISODistribution(),
		"aperture_distribution":     t.ApertureDistribution(),
		"focal_length_distribution": t.FocalLengthDistribution(),
		"timeline":                  t.Timeline(g),
		"time_of_day_distribution":  t.TimeOfDayDistribution(),
		"day_of_week_distribution":  t.DayOfWeekDistribution(),
		"orientation_stats":         t.OrientationStats(),
		"flash_usage_stats":         t.FlashUsageStats(),
		"gps_photos":                t.GPSPhotos(),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
