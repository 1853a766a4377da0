// Package deps verifies the external tools this program shells out to.
// The pipeline delegates all media work to ffmpeg, so the only hard
// requirement is an ffmpeg binary on PATH.
package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrFFmpegNotFound is returned by Verify when the encoder binary cannot be
// resolved. This is a category error: the run aborts before any filesystem
// scanning or mutation.
var ErrFFmpegNotFound = errors.New(
	"ffmpeg is not installed or not found on PATH (install it from https://ffmpeg.org/download.html)")

// Requirement defines an external dependency of the conversion pipeline.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external binaries the pipeline depends on.
func Requirements() []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     "ffmpeg",
			Description: "media encoder used for video to MP3 conversion",
		},
	}
}

// Check evaluates the provided requirements and reports availability.
// It is informational and never fails; callers decide what a missing
// required binary means.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Detail = path
		results = append(results, status)
	}
	return results
}

// Verify is the pre-run gate: it resolves the encoder on PATH and returns
// ErrFFmpegNotFound otherwise. Run before any discovery so a missing
// encoder produces no partial output.
func Verify() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFFmpegNotFound
	}
	return nil
}

// EncoderVersion returns the first line of "ffmpeg -version", or an empty
// string if it cannot be determined. Used by the --check report.
func EncoderVersion() string {
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line
}
