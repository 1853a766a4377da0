// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/mp3mill/internal/config"
	"github.com/backmassage/mp3mill/internal/ffmpeg"
	"github.com/backmassage/mp3mill/internal/logging"
	"github.com/backmassage/mp3mill/internal/naming"
	"github.com/backmassage/mp3mill/internal/scan"
)

// ProgressFunc receives one update per processed job: current in 1..total,
// strictly increasing, ending at total/total when the run completes.
// Rendering is the caller's concern; the pipeline only reports positions.
type ProgressFunc func(current, total int)

// Run is the top-level batch entry point. It materializes the sorted match
// list, converts each file sequentially, and returns aggregate counts.
// A discovery failure (e.g. an unreadable subdirectory) is a category
// error: nothing has been converted yet, so it propagates instead of
// masquerading as an empty run.
//
// A single file failing never aborts the batch; only context cancellation
// (SIGINT) stops the loop, and then only between jobs.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, inv *ffmpeg.Invoker, progress ProgressFunc) (Summary, error) {
	var s Summary
	if progress == nil {
		progress = func(int, int) {}
	}

	log.Info("Searching for video files in %s", cfg.InputDir)
	files, err := scan.Match(scan.Criteria{
		Root:       cfg.InputDir,
		Extensions: scan.NormalizeExtensions(cfg.Extensions),
		Recursive:  cfg.Recursive,
	})
	if err != nil {
		return s, fmt.Errorf("file discovery failed: %w", err)
	}

	s.Total = len(files)
	if s.Total == 0 {
		log.Warn("No matching video files found in %s", cfg.InputDir)
		return s, nil
	}
	log.Info("Found %d video file(s) to convert", s.Total)

	// Cancellation must stop the loop between jobs, never kill the encoder
	// mid-file: the in-flight job runs on a context that survives the
	// interrupt and is bounded only by the invoker's own timeout.
	jobCtx := context.WithoutCancel(ctx)

	for i, src := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted, stopping after %d of %d files", i, s.Total)
			break
		}
		processFile(jobCtx, cfg, log, inv, src, i+1, &s)
		progress(i+1, s.Total)
	}

	log.Info("Done: %d converted, %d skipped, %d failed", s.Converted, s.Skipped, s.Failed)
	return s, nil
}

// processFile handles one video file: map destination → convert → account.
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, inv *ffmpeg.Invoker, src string, index int, s *Summary) {
	basename := filepath.Base(src)
	log.Debug("[%d/%d] %s", index, s.Total, src)

	dst, err := naming.MapDestination(src, cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Error("Cannot map destination for %s: %v", src, err)
		s.Failed++
		return
	}

	job := ffmpeg.Job{Source: src, Destination: dst, Bitrate: cfg.Bitrate}

	if cfg.DryRun {
		if !cfg.Overwrite {
			if _, err := os.Stat(dst); err == nil {
				log.Warn("[DRY] Would skip %s (destination exists)", filepath.Base(dst))
				s.Skipped++
				return
			}
		}
		log.Success("[DRY] Would convert %s -> %s", basename, filepath.Base(dst))
		s.Converted++
		return
	}

	outcome := inv.Convert(ctx, job, cfg.Overwrite)
	switch outcome.Kind {
	case ffmpeg.Converted:
		s.Converted++
		if fi, err := os.Stat(src); err == nil {
			s.InputBytes += fi.Size()
		}
		if fi, err := os.Stat(dst); err == nil {
			s.OutputBytes += fi.Size()
		}
		log.Success("Converted %s -> %s", basename, filepath.Base(dst))
	case ffmpeg.Skipped:
		s.Skipped++
		log.Warn("Skipping %s (%s)", filepath.Base(dst), outcome.Detail)
	case ffmpeg.Failed:
		s.Failed++
		log.Error("Failed to convert %s: %s", src, outcome.Detail)
	}
}
