package suite

// CaseOutcome captures the result of a single case execution.
// Created exactly once per case per run.
type CaseOutcome struct {
	// Name is the case name.
	Name string `json:"name"`

	// Description is the case description.
	Description string `json:"description"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Error holds the failure message when the check panicked.
	// It is empty for checks that merely returned false.
	Error string `json:"error,omitempty"`
}

// Report is the aggregated outcome of one suite run. The field
// names and their order are an external contract: the report
// renderer reads them from the serialized stream, so they must
// not change.
type Report struct {
	// SuiteName is the name of the suite that produced this
	// report.
	SuiteName string `json:"test_name"`

	// SuiteDescription is the suite description.
	SuiteDescription string `json:"test_description"`

	// Total is the number of cases executed.
	Total int `json:"total"`

	// Passed is the number of cases that succeeded.
	Passed int `json:"passed"`

	// Failed is the number of cases that did not succeed.
	Failed int `json:"failed"`

	// Success is true when no case failed.
	Success bool `json:"success"`

	// Cases holds per-case outcomes in registration order.
	Cases []CaseOutcome `json:"case_results"`

	// Error is set only on synthetic reports produced when
	// suite execution itself failed before any outcome could
	// be aggregated.
	Error string `json:"error,omitempty"`
}
