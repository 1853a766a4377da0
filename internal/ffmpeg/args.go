package ffmpeg

// Binary is the encoder executable resolved on PATH.
const Binary = "ffmpeg"

// BuildArgs constructs the encoder argument list for a job. The invocation
// contract is fixed: suppress the banner, log errors only, confirm or
// refuse overwriting to match the overwrite policy, strip the video
// stream, and encode audio with libmp3lame at the job's bitrate.
func BuildArgs(job Job, overwrite bool) []string {
	args := make([]string, 0, 12)
	args = append(args, "-hide_banner", "-loglevel", "error")
	if overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	args = append(args,
		"-i", job.Source,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", job.Bitrate,
		job.Destination,
	)
	return args
}
