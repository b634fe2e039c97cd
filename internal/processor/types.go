package processor

import (
	"fmt"
	"strings"
)

// Format is a supported output encoding.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// DefaultQuality is the encoder quality used when the caller does not
// pick one. Ignored for PNG.
const DefaultQuality = 85

// ParseFormat normalizes a user-supplied format name. "jpg" is an
// accepted alias for "jpeg"; matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected jpeg, png, or webp)", s)
	}
}

// Ext is the file extension written for this format.
func (f Format) Ext() string {
	return "." + string(f)
}

// SizingOptions selects at most one sizing mode: max-side, exact
// width+height (optionally cover-cropped), or a single derived axis.
// A zero value means the axis is unset.
type SizingOptions struct {
	MaxSide    int
	Width      int
	Height     int
	CropCenter bool
}

type OutputOptions struct {
	Format  Format
	Quality int
}

type Options struct {
	InputDir  string
	OutputDir string
	Sizing    SizingOptions
	Output    OutputOptions
}

// Stage names the pipeline step a job failed in.
type Stage string

const (
	StageDecode    Stage = "decode"
	StageGeometry  Stage = "geometry"
	StageTransform Stage = "transform"
	StageEncode    Stage = "encode"
	StageWrite     Stage = "write"
)

type Job struct {
	SourcePath string
	DestPath   string
	Index      int
	Total      int
}

type Result struct {
	Job
	Stage        Stage
	Err          error
	Width        int
	Height       int
	BytesWritten int64
}

type Failure struct {
	Path   string
	Reason string
}

// Summary aggregates a finished batch. Failures preserve job order.
type Summary struct {
	Found        int
	Converted    int
	Failed       int
	BytesWritten int64
	Failures     []Failure
}

type ProgressUpdate struct {
	FoundDelta        int
	ConvertedDelta    int
	FailedDelta       int
	BytesWrittenDelta int64
}
