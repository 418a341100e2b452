package main

import (
	"fmt"
	"io"
)

// progressReporter implements driver.ProgressReporter, printing a
// carriage-return-updated percentage when attached to a terminal and one
// line per update otherwise, so piped output stays readable.
type progressReporter struct {
	out         io.Writer
	interactive bool
	last        int
}

func newProgressReporter(out io.Writer, interactive bool) *progressReporter {
	return &progressReporter{out: out, interactive: interactive, last: -1}
}

func (r *progressReporter) Report(percent int) {
	if percent == r.last {
		return
	}
	r.last = percent
	if r.interactive {
		fmt.Fprintf(r.out, "\rscanning... %3d%%", percent)
		return
	}
	fmt.Fprintf(r.out, "scanning... %d%%\n", percent)
}

func (r *progressReporter) Done() {
	if r.interactive {
		fmt.Fprint(r.out, "\r")
	}
}
