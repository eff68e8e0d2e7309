package bench

import (
	"fmt"
	"io"
)

// Reporter writes results as plain text lines.
type Reporter struct {
	output io.Writer
	lines  int
}

func NewReporter(output io.Writer) *Reporter {
	return &Reporter{output: output}
}

func (r *Reporter) Report(result Result) error {
	return r.println(result.String())
}

func (r *Reporter) ReportComparison(c Comparison) error {
	return r.println(c.String())
}

// Lines is the number of lines written so far.
func (r *Reporter) Lines() int {
	return r.lines
}

func (r *Reporter) println(line string) error {
	if _, err := fmt.Fprintln(r.output, line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	r.lines++
	return nil
}
