package report

import (
	"reflect"
	"testing"
	"time"

	"photostat/internal/exif"
)

func strp(s string) *string       { return &s }
func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }
func boolp(v bool) *bool          { return &v }
func timep(v time.Time) *time.Time { return &v }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return timep(t)
}

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, "Early Morning"}, {6, "Early Morning"}, {7, "Early Morning"},
		{8, "Morning"}, {11, "Morning"},
		{12, "Afternoon"}, {16, "Afternoon"},
		{17, "Golden Hour"}, {19, "Golden Hour"},
		{20, "Evening"}, {22, "Evening"},
		{23, "Night"}, {0, "Night"}, {4, "Night"},
	}

	for _, tc := range cases {
		if got := TimeOfDay(tc.hour); got != tc.want {
			t.Errorf("TimeOfDay(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestCameraUsage(t *testing.T) {
	table := NewTable([]exif.Record{
		{CameraModel: strp("X-T5")},
		{CameraModel: strp("X-T5")},
		{CameraModel: strp("EOS R6")},
	})

	rows := table.CameraUsage()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "X-T5" || rows[0].Count != 2 || rows[0].Percentage != 66.7 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Name != "EOS R6" || rows[1].Count != 1 || rows[1].Percentage != 33.3 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}

	sum := rows[0].Percentage + rows[1].Percentage
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestUsageTieOrder(t *testing.T) {
	table := NewTable([]exif.Record{
		{Lens: strp("35mm")},
		{Lens: strp("50mm")},
	})

	rows := table.LensUsage()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "35mm" || rows[1].Name != "50mm" {
		t.Errorf("ties must keep first-seen order, got %q then %q", rows[0].Name, rows[1].Name)
	}
}

func TestISODistribution(t *testing.T) {
	table := NewTable([]exif.Record{
		{ISO: intp(400)},
		{ISO: intp(100)},
		{ISO: intp(400)},
		{},
	})

	rows := table.ISODistribution()
	want := []CountRow{{Value: 100, Count: 1}, {Value: 400, Count: 2}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %+v, got %+v", want, rows)
	}
}

func TestApertureDistributionAscending(t *testing.T) {
	table := NewTable([]exif.Record{
		{Aperture: floatp(4.0)},
		{Aperture: floatp(1.4)},
		{Aperture: floatp(2.8)},
	})

	rows := table.ApertureDistribution()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Value <= rows[i-1].Value {
			t.Errorf("rows not ascending: %+v", rows)
		}
	}
}

func TestTimelineMonthly(t *testing.T) {
	table := NewTable([]exif.Record{
		{DateTime: date("2023-01-15 10:00:00")},
		{DateTime: date("2023-03-02 10:00:00")},
		{},
	})

	buckets := table.Timeline(Monthly)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d: %+v", len(buckets), buckets)
	}
	counts := []int{buckets[0].Count, buckets[1].Count, buckets[2].Count}
	if !reflect.DeepEqual(counts, []int{1, 0, 1}) {
		t.Errorf("expected counts [1 0 1], got %v", counts)
	}
	if buckets[1].Start.Month() != time.February || buckets[1].Start.Day() != 1 {
		t.Errorf("expected gap bucket 2023-02-01, got %v", buckets[1].Start)
	}
}

func TestTimelineWeeklyStartsMonday(t *testing.T) {
	// 2023-06-01 is a Thursday
	table := NewTable([]exif.Record{{DateTime: date("2023-06-01 10:00:00")}})

	buckets := table.Timeline(Weekly)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	start := buckets[0].Start
	if start.Weekday() != time.Monday || start.Day() != 29 || start.Month() != time.May {
		t.Errorf("expected week bucket 2023-05-29, got %v", start)
	}
}

func TestTimelineDailyAndYearly(t *testing.T) {
	table := NewTable([]exif.Record{
		{DateTime: date("2022-12-31 23:00:00")},
		{DateTime: date("2023-01-02 01:00:00")},
	})

	if buckets := table.Timeline(Daily); len(buckets) != 3 {
		t.Errorf("expected 3 daily buckets, got %d", len(buckets))
	}
	if buckets := table.Timeline(Yearly); len(buckets) != 2 {
		t.Errorf("expected 2 yearly buckets, got %d", len(buckets))
	}
}

func TestParseGranularity(t *testing.T) {
	if _, err := ParseGranularity("fortnight"); err == nil {
		t.Error("expected error for invalid granularity")
	}
	if g, err := ParseGranularity("week"); err != nil || g != Weekly {
		t.Errorf("expected Weekly, got %v (%v)", g, err)
	}
}

func TestTimeOfDayDistribution(t *testing.T) {
	table := NewTable([]exif.Record{
		{DateTime: date("2023-06-01 06:00:00")},
		{DateTime: date("2023-06-01 18:30:00")},
		{}, // no datetime, counted nowhere
	})

	rows := table.TimeOfDayDistribution()
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	byLabel := map[string]int{}
	total := 0
	for _, r := range rows {
		byLabel[r.Label] = r.Count
		total += r.Count
	}
	if byLabel["Early Morning"] != 1 || byLabel["Golden Hour"] != 1 {
		t.Errorf("unexpected counts: %v", byLabel)
	}
	if total != 2 {
		t.Errorf("expected 2 counted photos, got %d", total)
	}
	for i, label := range TimeOfDayOrder {
		if rows[i].Label != label {
			t.Errorf("row %d: expected %q, got %q", i, label, rows[i].Label)
		}
	}
}

func TestDayOfWeekDistribution(t *testing.T) {
	// 2023-06-01 is a Thursday
	table := NewTable([]exif.Record{{DateTime: date("2023-06-01 10:00:00")}})

	rows := table.DayOfWeekDistribution()
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	for i, label := range WeekdayOrder {
		if rows[i].Label != label {
			t.Errorf("row %d: expected %q, got %q", i, label, rows[i].Label)
		}
	}
	if rows[3].Label != "Thursday" || rows[3].Count != 1 {
		t.Errorf("expected Thursday=1, got %+v", rows[3])
	}
}

func TestDistributionsEmptyWithoutDates(t *testing.T) {
	table := NewTable([]exif.Record{{ISO: intp(100)}})

	if rows := table.TimeOfDayDistribution(); rows != nil {
		t.Errorf("expected nil, got %+v", rows)
	}
	if rows := table.DayOfWeekDistribution(); rows != nil {
		t.Errorf("expected nil, got %+v", rows)
	}
	if buckets := table.Timeline(Monthly); buckets != nil {
		t.Errorf("expected nil, got %+v", buckets)
	}
}

func TestOrientationStats(t *testing.T) {
	table := NewTable([]exif.Record{
		{Orientation: "portrait"},
		{Orientation: "landscape"},
		{Orientation: "landscape"},
	})

	stats := table.OrientationStats()
	if stats["portrait"] != 1 || stats["landscape"] != 2 {
		t.Errorf("unexpected stats: %v", stats)
	}

	onlyPortrait := NewTable([]exif.Record{{Orientation: "portrait"}})
	if stats := onlyPortrait.OrientationStats(); stats["landscape"] != 0 {
		t.Errorf("expected zero landscape entry, got %v", stats)
	}
}

func TestFlashUsageStats(t *testing.T) {
	table := NewTable([]exif.Record{
		{FlashUsed: boolp(true)},
		{FlashUsed: boolp(false)},
		{FlashUsed: boolp(false)},
		{},
	})

	stats := table.FlashUsageStats()
	if stats["used"] != 1 || stats["not_used"] != 2 {
		t.Errorf("unexpected stats: %v", stats)
	}

	noFlash := NewTable([]exif.Record{{}})
	if stats := noFlash.FlashUsageStats(); len(stats) != 0 {
		t.Errorf("expected empty stats, got %v", stats)
	}
}

func TestGPSPhotos(t *testing.T) {
	table := NewTable([]exif.Record{
		{
			Filename: "geo.jpg",
			Latitude: floatp(40.5), Longitude: floatp(-74.0),
			DateTime: date("2023-06-01 06:00:00"),
		},
		{Filename: "nodate.jpg", Latitude: floatp(1.0), Longitude: floatp(2.0)},
		{Filename: "plain.jpg", DateTime: date("2023-06-01 06:00:00")},
	})

	photos := table.GPSPhotos()
	if len(photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(photos))
	}
	if photos[0].Filename != "geo.jpg" || photos[0].Latitude != 40.5 {
		t.Errorf("unexpected photo: %+v", photos[0])
	}
}

func TestSummary(t *testing.T) {
	table := NewTable([]exif.Record{
		{
			CameraModel: strp("X-T5"), Lens: strp("35mm"),
			ISO: intp(100), Aperture: floatp(2.8), FocalLength: floatp(35.0),
			Latitude: floatp(40.5), Longitude: floatp(-74.0),
			DateTime: date("2023-06-01 06:00:00"),
		},
		{
			CameraModel: strp("X-T5"), Lens: strp("50mm"),
			ISO: intp(400), Aperture: floatp(2.8), FocalLength: floatp(50.0),
			DateTime: date("2023-06-11 18:30:00"),
		},
	})

	s := table.Summary()
	if s.TotalPhotos != 2 {
		t.Errorf("expected 2 photos, got %d", s.TotalPhotos)
	}
	if s.UniqueCameras != 1 || s.UniqueLenses != 2 {
		t.Errorf("unexpected unique counts: cameras=%d lenses=%d", s.UniqueCameras, s.UniqueLenses)
	}
	if s.PhotosWithGPS != 1 {
		t.Errorf("expected 1 gps photo, got %d", s.PhotosWithGPS)
	}

	if s.DateRange == nil {
		t.Fatal("expected date range")
	}
	if s.DateRange.SpanDays != 10 {
		t.Errorf("expected span of 10 days, got %d", s.DateRange.SpanDays)
	}

	if s.ISOStats == nil {
		t.Fatal("expected iso stats")
	}
	want := IntStats{Min: 100, Max: 400, Mean: 250, Median: 250}
	if *s.ISOStats != want {
		t.Errorf("expected %+v, got %+v", want, *s.ISOStats)
	}

	if s.ApertureStats == nil || s.ApertureStats.MostCommon != 2.8 {
		t.Errorf("expected most common aperture 2.8, got %+v", s.ApertureStats)
	}
	if s.FocalLengthStats == nil || s.FocalLengthStats.Min != 35.0 || s.FocalLengthStats.Max != 50.0 {
		t.Errorf("unexpected focal length stats: %+v", s.FocalLengthStats)
	}
}

func TestSummaryMostCommonAllUnique(t *testing.T) {
	table := NewTable([]exif.Record{
		{Aperture: floatp(2.0)},
		{Aperture: floatp(1.8)},
	})

	s := table.Summary()
	if s.ApertureStats == nil || s.ApertureStats.MostCommon != 1.8 {
		t.Errorf("expected smallest value 1.8 when all values are unique, got %+v", s.ApertureStats)
	}
}

func TestSummaryMostCommonTie(t *testing.T) {
	table := NewTable([]exif.Record{
		{Aperture: floatp(4.0)},
		{Aperture: floatp(4.0)},
		{Aperture: floatp(2.8)},
		{Aperture: floatp(2.8)},
		{Aperture: floatp(5.6)},
	})

	s := table.Summary()
	if s.ApertureStats == nil || s.ApertureStats.MostCommon != 2.8 {
		t.Errorf("expected smallest mode 2.8, got %+v", s.ApertureStats)
	}
}

func TestEmptyTable(t *testing.T) {
	table := NewTable(nil)

	if rows := table.CameraUsage(); len(rows) != 0 {
		t.Errorf("expected no camera usage, got %+v", rows)
	}
	if rows := table.ISODistribution(); len(rows) != 0 {
		t.Errorf("expected no iso distribution, got %+v", rows)
	}
	if rows := table.TimeOfDayDistribution(); len(rows) != 0 {
		t.Errorf("expected no time of day rows, got %+v", rows)
	}
	if stats := table.OrientationStats(); len(stats) != 0 {
		t.Errorf("expected empty orientation stats, got %v", stats)
	}
	if photos := table.GPSPhotos(); len(photos) != 0 {
		t.Errorf("expected no gps photos, got %+v", photos)
	}

	s := table.Summary()
	if s.TotalPhotos != 0 || s.DateRange != nil || s.ISOStats != nil {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestRebuildYieldsIdenticalReports(t *testing.T) {
	records := []exif.Record{
		{
			CameraModel: strp("X-T5"), Lens: strp("35mm"), ISO: intp(100),
			Aperture: floatp(2.8), Orientation: "landscape",
			DateTime: date("2023-06-01 06:00:00"),
		},
		{
			CameraModel: strp("EOS R6"), ISO: intp(400),
			Aperture: floatp(4.0), Orientation: "portrait",
			DateTime: date("2023-06-03 20:15:00"),
		},
	}

	a, b := NewTable(records), NewTable(records)

	if !reflect.DeepEqual(a.CameraUsage(), b.CameraUsage()) {
		t.Error("camera usage differs between rebuilds")
	}
	if !reflect.DeepEqual(a.ISODistribution(), b.ISODistribution()) {
		t.Error("iso distribution differs between rebuilds")
	}
	if !reflect.DeepEqual(a.Timeline(Daily), b.Timeline(Daily)) {
		t.Error("timeline differs between rebuilds")
	}
	if !reflect.DeepEqual(a.TimeOfDayDistribution(), b.TimeOfDayDistribution()) {
		t.Error("time of day distribution differs between rebuilds")
	}
	if !reflect.DeepEqual(a.Summary(), b.Summary()) {
		t.Error("summary differs between rebuilds")
	}
}
