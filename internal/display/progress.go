// Package display renders the progress bar, the result tables, and
// human-readable sizes. The pipeline itself never formats output; it
// reports positions and counts, and this package decides how they look.
package display

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/mp3mill/internal/pipeline"
)

// ProgressSink returns a pipeline progress function that renders a bar on w.
// The bar is sized lazily from the first update, since the pipeline only
// knows the job count after discovery.
func ProgressSink(w io.Writer) pipeline.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(current, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription("converting"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
			)
		}
		_ = bar.Set(current)
	}
}
