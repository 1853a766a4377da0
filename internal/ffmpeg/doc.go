// Package ffmpeg delegates one conversion job at a time to the external
// ffmpeg encoder.
//
// The encoder is a black box behind the [Runner] capability: [ExecRunner]
// spawns the real subprocess, while tests substitute an in-memory runner
// so [Invoker] accounting stays deterministic without ffmpeg installed.
//
// Per-file failures never escape this package as errors; they are
// translated into [Outcome] values for the batch runner to record.
package ffmpeg
