package registry

import (
	"time"

	"digital.vasic.lighttest/pkg/suite"
)

// RunObserver receives callbacks during registry execution for
// monitoring and UI updates. Callbacks run on the registry's
// goroutine; a panicking observer is contained and never
// disturbs the run.
type RunObserver interface {
	// OnSuiteStarted is called before a suite begins
	// executing its cases.
	OnSuiteStarted(name, description string, cases int)

	// OnCaseFinished is called after each case outcome is
	// recorded, in registration order.
	OnCaseFinished(suiteName string, outcome suite.CaseOutcome)

	// OnSuiteCompleted is called once per suite with its
	// report, including synthetic failure reports.
	OnSuiteCompleted(rep *suite.Report, duration time.Duration)
}
