package exif

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound signals that the scan target directory does not exist.
var ErrNotFound = errors.New("folder not found")

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
}

// Extractor scans directories for photos and extracts their metadata.
type Extractor struct {
	Log      *zap.Logger
	Progress io.Writer
}

func NewExtractor(log *zap.Logger) *Extractor {
	return &Extractor{Log: log, Progress: os.Stdout}
}

// Scan walks dir and extracts metadata from every supported image
// file. Files that cannot be decoded are logged and skipped; only a
// missing scan directory fails the whole scan.
func (e *Extractor) Scan(dir string, recursive bool) ([]Record, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	paths, err := e.collect(dir, recursive)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(e.Progress, "Found %d photos to analyze...\n", len(paths))

	records := make([]Record, 0, len(paths))
	for i, path := range paths {
		fmt.Fprintf(e.Progress, "[%d/%d] %s\n", i+1, len(paths), path)

		rec, err := e.Extract(path)
		if err != nil {
			e.Log.Warn("skipping file",
				zap.String("file", filepath.Base(path)),
				zap.Error(err))
			continue
		}
		records = append(records, *rec)
	}

	e.Log.Info("scan complete",
		zap.Int("photos", len(records)),
		zap.Int("skipped", len(paths)-len(records)))
	return records, nil
}

func (e *Extractor) collect(dir string, recursive bool) ([]string, error) {
	var paths []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if supportedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supportedExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
