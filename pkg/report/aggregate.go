package report

import (
	"encoding/json"
	"io"
	"time"

	"digital.vasic.lighttest/pkg/suite"
)

// Aggregate is a single JSON document summarizing an entire
// run: cumulative counts plus every per-suite report.
type Aggregate struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Suites      int             `json:"suites"`
	Total       int             `json:"total"`
	Passed      int             `json:"passed"`
	Failed      int             `json:"failed"`
	Success     bool            `json:"success"`
	PassRate    float64         `json:"pass_rate"`
	Reports     []*suite.Report `json:"reports"`
}

// BuildAggregate creates an Aggregate from a run's reports.
func BuildAggregate(reports []*suite.Report) *Aggregate {
	var totals Totals
	for _, rep := range reports {
		totals.Add(rep)
	}

	return &Aggregate{
		GeneratedAt: time.Now(),
		Suites:      totals.Suites,
		Total:       totals.Total,
		Passed:      totals.Passed,
		Failed:      totals.Failed,
		Success:     totals.ExitStatus() == 0,
		PassRate:    totals.PassRate(),
		Reports:     reports,
	}
}

// WriteAggregate serializes an aggregate document to w. When
// pretty is true the output is indented.
func WriteAggregate(
	w io.Writer,
	agg *Aggregate,
	pretty bool,
) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(agg, "", "  ")
	} else {
		data, err = json.Marshal(agg)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
