package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgs(t *testing.T) {
	job := Job{
		Source:      "in/video.mp4",
		Destination: "out/video.mp3",
		Bitrate:     "192k",
	}

	tests := []struct {
		name      string
		overwrite bool
		want      []string
	}{
		{
			name:      "no overwrite",
			overwrite: false,
			want: []string{
				"-hide_banner", "-loglevel", "error", "-n",
				"-i", "in/video.mp4",
				"-vn",
				"-acodec", "libmp3lame",
				"-b:a", "192k",
				"out/video.mp3",
			},
		},
		{
			name:      "overwrite",
			overwrite: true,
			want: []string{
				"-hide_banner", "-loglevel", "error", "-y",
				"-i", "in/video.mp4",
				"-vn",
				"-acodec", "libmp3lame",
				"-b:a", "192k",
				"out/video.mp3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildArgs(job, tt.overwrite))
		})
	}
}

func TestBuildArgs_BitrateFromJob(t *testing.T) {
	job := Job{Source: "a.mov", Destination: "a.mp3", Bitrate: "320k"}
	args := BuildArgs(job, false)
	assert.Contains(t, args, "320k")
}
