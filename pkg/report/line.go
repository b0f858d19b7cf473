// Package report serializes suite reports into the structured
// stream consumed by the external report renderer, and
// aggregates outcomes across a whole run.
package report

import (
	"encoding/json"
	"io"

	"digital.vasic.lighttest/pkg/suite"
)

// LineReporter writes one self-contained JSON object per
// report, each on a single line. The field order inside the
// object follows the Report struct declaration, which is part
// of the external renderer contract.
type LineReporter struct{}

// NewLineReporter creates a LineReporter.
func NewLineReporter() *LineReporter {
	return &LineReporter{}
}

// Render serializes a single report without a trailing
// newline. When pretty is true the output is indented for
// human readers; pretty output is not valid for the line
// stream.
func (r *LineReporter) Render(
	rep *suite.Report,
	pretty bool,
) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}

// WriteLine serializes a report and writes it to w as a single
// newline-terminated line.
func (r *LineReporter) WriteLine(
	w io.Writer,
	rep *suite.Report,
) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
