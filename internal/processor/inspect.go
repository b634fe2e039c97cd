package processor

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"

	"photo_editor/pkg/imgutil"
)

// FileReport describes one image for the inspect command: container
// format, pixel dimensions, and EXIF highlights where the container
// carries them.
type FileReport struct {
	Name   string
	Kind   imgutil.Kind
	Width  int
	Height int
	Camera string
	Taken  string
	HasGPS bool
	Err    error
}

// Inspect reports on every supported image directly inside dir without
// modifying anything. Per-file problems land in the report's Err field;
// only an unreadable directory fails the call.
func Inspect(dir string) ([]FileReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !acceptedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	reports := make([]FileReport, 0, len(names))
	for _, name := range names {
		report := inspectFile(filepath.Join(dir, name))
		report.Name = name
		reports = append(reports, report)
	}
	return reports, nil
}

func inspectFile(path string) FileReport {
	rep := FileReport{}

	f, err := os.Open(path)
	if err != nil {
		rep.Err = err
		return rep
	}
	defer f.Close()

	kind, err := imgutil.SniffReader(f)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Kind = kind
	if kind == imgutil.KindUnknown {
		rep.Err = ErrUnsupportedFormat
		return rep
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		rep.Err = err
		return rep
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Width, rep.Height = cfg.Width, cfg.Height

	// Only JPEG sources carry EXIF we can surface here.
	if kind != imgutil.KindJPEG {
		return rep
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		rep.Err = err
		return rep
	}

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(f, nil, true)
	if err != nil {
		if isNoExif(err) {
			return rep
		}
		rep.Err = err
		return rep
	}

	for _, tag := range tags {
		switch {
		case tag.TagName == "Model" || tag.TagName == "CameraModelName":
			rep.Camera = tag.FormattedFirst
		case tag.TagName == "DateTimeOriginal":
			rep.Taken = tag.FormattedFirst
		case tag.TagName == "DateTime" && rep.Taken == "":
			rep.Taken = tag.FormattedFirst
		case strings.HasPrefix(tag.TagName, "GPS") || strings.Contains(tag.IfdPath, "GPS"):
			rep.HasGPS = true
		}
	}

	return rep
}

func isNoExif(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "no exif")
}
