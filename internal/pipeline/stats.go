package pipeline

// Summary tracks per-outcome counters and byte totals across one batch run.
// Only the batch runner mutates it; it does not survive the process.
type Summary struct {
	Total     int // Matched files, counted before processing starts.
	Converted int
	Skipped   int
	Failed    int

	InputBytes  int64 // Source bytes of successfully converted files.
	OutputBytes int64 // Destination bytes of successfully converted files.
}

// Processed returns how many jobs actually ran (may be less than Total
// after an interrupt).
func (s *Summary) Processed() int {
	return s.Converted + s.Skipped + s.Failed
}

// SpaceSaved returns the byte difference between converted inputs and their
// outputs. Positive means the audio outputs are smaller.
func (s *Summary) SpaceSaved() int64 {
	return s.InputBytes - s.OutputBytes
}
