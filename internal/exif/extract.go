package exif

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	_ "golang.org/x/image/tiff"
)

// ErrNoMetadata signals a file without any decodable EXIF data.
var ErrNoMetadata = errors.New("no EXIF metadata")

const timeLayout = "2006:01:02 15:04:05"

// Extract reads a single image file and builds a metadata record.
// It fails when the file cannot be opened, has no EXIF data, or its
// dimensions cannot be decoded; individual tags that fail to convert
// are left unset instead.
func (e *Extractor) Extract(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := goexif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMetadata, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Filename: filepath.Base(path),
		Filepath: path,
		FileSize: float64(info.Size()) / (1024 * 1024),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
	if cfg.Height > cfg.Width {
		rec.Orientation = "portrait"
	} else {
		rec.Orientation = "landscape"
	}

	w := &recordWalker{rec: rec}
	x.Walk(w)
	resolveGPS(x, rec)

	return rec, nil
}

// recordWalker maps recognized EXIF field names onto Record fields.
// Unrecognized fields fall through the switch untouched.
type recordWalker struct {
	rec *Record
	// set once DateTimeOriginal was seen, so DateTime cannot overwrite it
	fromOriginal bool
}

func (w *recordWalker) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	switch name {
	case goexif.Make:
		w.setString(&w.rec.CameraMake, tag)
	case goexif.Model:
		w.setString(&w.rec.CameraModel, tag)
	case goexif.LensModel:
		w.setString(&w.rec.Lens, tag)
	case goexif.FocalLength:
		if v, ok := tagToFloat(tag); ok {
			w.rec.FocalLength = &v
		}
	case goexif.FNumber:
		if v, ok := tagToFloat(tag); ok {
			w.rec.Aperture = &v
		}
	case goexif.ExposureTime:
		if num, den, err := tag.Rat2(0); err == nil {
			if s, ok := shutterSpeed(num, den); ok {
				w.rec.ShutterSpeed = &s
			}
		} else if v, err := tag.Float(0); err == nil {
			s := strconv.FormatFloat(v, 'g', -1, 64)
			w.rec.ShutterSpeed = &s
		}
	case goexif.ISOSpeedRatings:
		if v, err := tag.Int(0); err == nil {
			w.rec.ISO = &v
		}
	case goexif.DateTimeOriginal:
		if t, ok := parseTime(tag); ok {
			w.rec.DateTime = &t
			w.fromOriginal = true
		}
	case goexif.DateTime:
		if w.fromOriginal {
			break
		}
		if t, ok := parseTime(tag); ok {
			w.rec.DateTime = &t
		}
	case goexif.Flash:
		if v, err := tag.Int(0); err == nil {
			b := v&1 == 1
			w.rec.FlashUsed = &b
		}
	}
	return nil
}

func (w *recordWalker) setString(dst **string, tag *tiff.Tag) {
	if s, err := tag.StringVal(); err == nil {
		v := strings.TrimSpace(s)
		*dst = &v
	}
}

func parseTime(tag *tiff.Tag) (time.Time, bool) {
	s, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// tagToFloat converts a numeric EXIF tag to a float. Rational values
// are rounded to one decimal, matching the precision of focal length
// and aperture numbers on camera bodies.
func tagToFloat(tag *tiff.Tag) (float64, bool) {
	if num, den, err := tag.Rat2(0); err == nil {
		return ratToFloat(num, den)
	}
	if v, err := tag.Float(0); err == nil {
		return v, true
	}
	if v, err := tag.Int(0); err == nil {
		return float64(v), true
	}
	return 0, false
}

func ratToFloat(num, den int64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return math.Round(float64(num)/float64(den)*10) / 10, true
}

// shutterSpeed renders an ExposureTime rational the way cameras
// display it: "2.0s" for times of a second or longer, "1/500" below.
func shutterSpeed(num, den int64) (string, bool) {
	if num <= 0 || den <= 0 {
		return "", false
	}
	if num >= den {
		return fmt.Sprintf("%.1fs", float64(num)/float64(den)), true
	}
	return fmt.Sprintf("1/%d", int(math.Round(float64(den)/float64(num)))), true
}

// resolveGPS sets latitude and longitude together, or not at all.
// The reference tags are optional; coordinates stay positive when a
// hemisphere reference is missing.
func resolveGPS(x *goexif.Exif, rec *Record) {
	latTag, err := x.Get(goexif.GPSLatitude)
	if err != nil {
		return
	}
	lonTag, err := x.Get(goexif.GPSLongitude)
	if err != nil {
		return
	}

	latDMS, ok := dmsFromTag(latTag)
	if !ok {
		return
	}
	lonDMS, ok := dmsFromTag(lonTag)
	if !ok {
		return
	}

	lat := dmsToDegrees(latDMS[0], latDMS[1], latDMS[2], gpsRef(x, goexif.GPSLatitudeRef))
	lon := dmsToDegrees(lonDMS[0], lonDMS[1], lonDMS[2], gpsRef(x, goexif.GPSLongitudeRef))
	rec.Latitude = &lat
	rec.Longitude = &lon
}

func gpsRef(x *goexif.Exif, name goexif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// dmsFromTag reads a (degrees, minutes, seconds) rational triple.
func dmsFromTag(tag *tiff.Tag) ([3]float64, bool) {
	var dms [3]float64
	for i := 0; i < 3; i++ {
		num, den, err := tag.Rat2(i)
		if err != nil || den == 0 {
			return dms, false
		}
		dms[i] = float64(num) / float64(den)
	}
	return dms, true
}

// dmsToDegrees converts a GPS triple to decimal degrees, negated for
// the southern and western hemispheres.
func dmsToDegrees(deg, min, sec float64, ref string) float64 {
	v := deg + min/60 + sec/3600
	if ref == "S" || ref == "W" {
		v = -v
	}
	return v
}
