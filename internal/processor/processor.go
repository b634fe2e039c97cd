package processor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var acceptedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Run executes one batch: enumerate the input directory, convert each
// file in name order, and aggregate the outcome. A single file's
// failure is recorded and the batch continues; only startup problems
// (missing input dir, unwritable output dir) abort the run.
//
// updates may be nil. When set, Run emits additive deltas for the
// progress UI; the caller owns the channel and closes it after Run
// returns.
func Run(ctx context.Context, opts Options, updates chan<- ProgressUpdate) (Summary, error) {
	summary := Summary{}

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return summary, err
	}
	if !info.IsDir() {
		return summary, fmt.Errorf("input path is not a directory: %s", opts.InputDir)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return summary, err
	}

	jobs, err := collectJobs(opts)
	if err != nil {
		return summary, err
	}

	summary.Found = len(jobs)
	if updates != nil && len(jobs) > 0 {
		updates <- ProgressUpdate{FoundDelta: len(jobs)}
	}

	for _, job := range jobs {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}

		res := convert(job, opts)
		if res.Err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{
				Path:   job.SourcePath,
				Reason: fmt.Sprintf("%s: %v", res.Stage, res.Err),
			})
			if updates != nil {
				updates <- ProgressUpdate{FailedDelta: 1}
			}
			continue
		}

		summary.Converted++
		summary.BytesWritten += res.BytesWritten
		if updates != nil {
			updates <- ProgressUpdate{ConvertedDelta: 1, BytesWrittenDelta: res.BytesWritten}
		}
	}

	return summary, nil
}

// collectJobs lists the immediate regular files of the input directory
// with an accepted extension, sorted by name so runs are deterministic.
// Anything else is skipped silently.
func collectJobs(opts Options) ([]Job, error) {
	entries, err := os.ReadDir(opts.InputDir)
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

	jobs := make([]Job, 0, len(names))
	for i, name := range names {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		jobs = append(jobs, Job{
			SourcePath: filepath.Join(opts.InputDir, name),
			DestPath:   filepath.Join(opts.OutputDir, base+opts.Output.Format.Ext()),
			Index:      i + 1,
			Total:      len(names),
		})
	}
	return jobs, nil
}

// convert runs the per-file pipeline: decode, resolve geometry, apply
// it, encode fully in memory, then write atomically. The Result tags
// any failure with the stage it happened in.
func convert(job Job, opts Options) Result {
	res := Result{Job: job}

	img, err := decodeFile(job.SourcePath)
	if err != nil {
		res.Stage, res.Err = StageDecode, err
		return res
	}

	bounds := img.Bounds()
	geom, err := ComputeGeometry(bounds.Dx(), bounds.Dy(), opts.Sizing)
	if err != nil {
		res.Stage, res.Err = StageGeometry, err
		return res
	}

	img = applyGeometry(img, geom)
	res.Width, res.Height = geom.Width, geom.Height

	var buf bytes.Buffer
	if err := encodeImage(&buf, img, opts.Output); err != nil {
		res.Stage, res.Err = StageEncode, err
		return res
	}

	written, err := writeAtomic(job.DestPath, buf.Bytes())
	if err != nil {
		res.Stage, res.Err = StageWrite, err
		return res
	}
	res.BytesWritten = written

	return res
}

// writeAtomic stages the output next to its destination and renames it
// into place, so a failed job never leaves a partial file behind.
func writeAtomic(destPath string, data []byte) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".photo_editor-*.tmp")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := replaceFile(tmp.Name(), destPath); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
