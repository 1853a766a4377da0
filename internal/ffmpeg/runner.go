package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// RunResult holds the outcome of a single encoder invocation.
type RunResult struct {
	ExitCode int    // Process exit code; -1 when the process never ran.
	Stderr   string // Captured stderr, for failure detail.
	Err      error  // Non-nil on nonzero exit or spawn failure.
}

// Runner is the capability for invoking the external encoder. The
// subprocess implementation is [ExecRunner]; tests substitute in-memory
// runners to drive accounting without spawning processes.
type Runner interface {
	Run(ctx context.Context, name string, args []string) RunResult
}

// ExecRunner runs the encoder as a synchronous, blocking subprocess.
// Stderr is captured silently; the encoder is already told to log errors
// only, so anything captured is failure detail.
type ExecRunner struct{}

// Run executes name with args, blocking until the process exits or ctx is
// done. Context cancellation kills the process.
func (ExecRunner) Run(ctx context.Context, name string, args []string) RunResult {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	code := 0
	if err != nil {
		code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
	}
	return RunResult{
		ExitCode: code,
		Stderr:   stderr.String(),
		Err:      err,
	}
}
