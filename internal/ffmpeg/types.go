package ffmpeg

// Job is one source-to-destination conversion unit derived from a single
// matched file. Immutable once created; it does not survive the run.
type Job struct {
	Source      string // Absolute or run-relative path to the video file.
	Destination string // Mapped output path, always ending in ".mp3".
	Bitrate     string // Canonical encoder bitrate token, e.g. "192k".
}

// OutcomeKind is the tri-state result of attempting a job.
type OutcomeKind int

const (
	Converted OutcomeKind = iota
	Skipped
	Failed
)

// String returns the lowercase label used in logs and summaries.
func (k OutcomeKind) String() string {
	switch k {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the per-job result. Detail carries the skip reason or the
// failure description; it is empty for Converted.
type Outcome struct {
	Kind   OutcomeKind
	Detail string
}

func converted() Outcome            { return Outcome{Kind: Converted} }
func skipped(detail string) Outcome { return Outcome{Kind: Skipped, Detail: detail} }
func failed(detail string) Outcome  { return Outcome{Kind: Failed, Detail: detail} }
