package report

import (
	"fmt"

	"digital.vasic.lighttest/pkg/suite"
)

// Totals accumulates case counts across a sequence of reports.
type Totals struct {
	// Suites is the number of reports accumulated.
	Suites int `json:"suites"`

	// Total is the cumulative case count.
	Total int `json:"total"`

	// Passed is the cumulative passed-case count.
	Passed int `json:"passed"`

	// Failed is the cumulative failed-case count.
	Failed int `json:"failed"`

	// SuiteFailures counts synthetic reports produced when a
	// suite's own execution failed before yielding outcomes.
	SuiteFailures int `json:"suite_failures"`
}

// Add folds one report into the totals.
func (t *Totals) Add(rep *suite.Report) {
	t.Suites++
	t.Total += rep.Total
	t.Passed += rep.Passed
	t.Failed += rep.Failed
	if rep.Error != "" {
		t.SuiteFailures++
	}
}

// ExitStatus returns the aggregate process status: 0 when the
// cumulative failed-case count is zero and no suite-level
// failure occurred, 1 otherwise.
func (t *Totals) ExitStatus() int {
	if t.Failed == 0 && t.SuiteFailures == 0 {
		return 0
	}
	return 1
}

// PassRate returns the fraction of passed cases, or 1 for an
// empty run.
func (t *Totals) PassRate() float64 {
	if t.Total == 0 {
		return 1
	}
	return float64(t.Passed) / float64(t.Total)
}

// SummaryLine renders the trailing human-readable line the
// external text-scanning collaborator expects after the report
// stream.
func SummaryLine(t Totals) string {
	return fmt.Sprintf(
		"Summary: %d passed, %d failed, %d total",
		t.Passed, t.Failed, t.Total,
	)
}
