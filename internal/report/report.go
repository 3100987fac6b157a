// Package report writes dftbench buffers and timing tables.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

const separator = "-----------------------------------------"

// Dump writes one "index, real, imag" row per sample under a separator line
// and an optional heading.
func Dump(w io.Writer, re, im []float64, message string) error {
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}

	if message != "" {
		if _, err := fmt.Fprintf(w, "%s:\n", message); err != nil {
			return err
		}
	}

	for i := range re {
		if _, err := fmt.Fprintf(w, "%3d, %10f, %10f\n", i, re[i], im[i]); err != nil {
			return err
		}
	}

	return nil
}

// Timing is the measured cost of running one transform Cycles times.
type Timing struct {
	Name    string
	Cycles  int
	Elapsed time.Duration
	// Error is the total error against the reference; negative when not
	// compared.
	Error float64
	Pass  bool
}

// PerOp returns the mean duration of one run.
func (t Timing) PerOp() time.Duration {
	if t.Cycles <= 0 {
		return 0
	}

	return t.Elapsed / time.Duration(t.Cycles)
}

// WriteTimings writes an aligned table of timings.
func WriteTimings(w io.Writer, timings []Timing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", "transform", "cycles", "ns/op", "total error", "result")

	for _, t := range timings {
		errCol, result := "-", "-"
		if t.Error >= 0 {
			errCol = fmt.Sprintf("%10e", t.Error)
			result = "FAIL"

			if t.Pass {
				result = "PASS"
			}
		}

		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t\n", t.Name, t.Cycles, t.PerOp().Nanoseconds(), errCol, result)
	}

	return tw.Flush()
}
