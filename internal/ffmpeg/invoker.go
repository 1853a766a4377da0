package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Invoker converts single jobs by delegating to the external encoder
// through a Runner.
type Invoker struct {
	runner  Runner
	timeout time.Duration // Per-job limit; 0 means unlimited.
}

// NewInvoker returns an Invoker using the given runner. timeout bounds each
// encoder invocation; zero preserves the legacy unlimited behavior.
func NewInvoker(runner Runner, timeout time.Duration) *Invoker {
	return &Invoker{runner: runner, timeout: timeout}
}

// Convert attempts one job and reports the outcome. Failures are returned
// as Failed outcomes, never as errors: a broken file must not abort the
// batch.
//
// When overwrite is false and the destination already exists, the encoder
// is not invoked and the job is Skipped. Otherwise missing parent
// directories of the destination are created (idempotently) and the
// encoder runs to completion.
func (inv *Invoker) Convert(ctx context.Context, job Job, overwrite bool) Outcome {
	if !overwrite {
		if _, err := os.Stat(job.Destination); err == nil {
			return skipped("destination exists")
		}
	}

	if err := os.MkdirAll(filepath.Dir(job.Destination), 0o755); err != nil {
		return failed(fmt.Sprintf("cannot create output directory: %v", err))
	}

	runCtx := ctx
	if inv.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, inv.timeout)
		defer cancel()
	}

	res := inv.runner.Run(runCtx, Binary, BuildArgs(job, overwrite))
	if res.Err == nil {
		return converted()
	}

	// A failed or killed encoder can leave a truncated destination behind,
	// which the skip check would treat as complete on the next run.
	os.Remove(job.Destination)

	switch {
	case errors.Is(res.Err, exec.ErrNotFound):
		return failed("encoder not found")
	case runCtx.Err() != nil && ctx.Err() == nil:
		return failed(fmt.Sprintf("encoder timed out after %s", inv.timeout))
	case res.ExitCode >= 0:
		detail := fmt.Sprintf("encoder exited with code %d", res.ExitCode)
		if line := lastLine(res.Stderr); line != "" {
			detail += ": " + line
		}
		return failed(detail)
	default:
		return failed(res.Err.Error())
	}
}

// lastLine returns the final non-empty stderr line, the part of encoder
// output most likely to name the actual problem.
func lastLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
