package monitor

import (
	"time"

	"digital.vasic.lighttest/pkg/suite"
)

// CollectorObserver adapts an EventCollector to the registry's
// RunObserver interface, translating lifecycle callbacks into
// run events.
type CollectorObserver struct {
	collector *EventCollector
}

// NewCollectorObserver creates the adapter.
func NewCollectorObserver(
	c *EventCollector,
) *CollectorObserver {
	return &CollectorObserver{collector: c}
}

// OnSuiteStarted emits a suite_started event.
func (o *CollectorObserver) OnSuiteStarted(
	name, _ string, cases int,
) {
	o.collector.Emit(RunEvent{
		Type:  EventSuiteStarted,
		Suite: name,
		Total: cases,
	})
}

// OnCaseFinished emits a case_finished event.
func (o *CollectorObserver) OnCaseFinished(
	suiteName string,
	outcome suite.CaseOutcome,
) {
	o.collector.Emit(RunEvent{
		Type:    EventCaseFinished,
		Suite:   suiteName,
		Case:    outcome.Name,
		Passed:  outcome.Passed,
		Message: outcome.Error,
	})
}

// OnSuiteCompleted emits a suite_completed event.
func (o *CollectorObserver) OnSuiteCompleted(
	rep *suite.Report,
	duration time.Duration,
) {
	o.collector.Emit(RunEvent{
		Type:     EventSuiteCompleted,
		Suite:    rep.SuiteName,
		Passed:   rep.Success,
		Message:  rep.Error,
		Total:    rep.Total,
		Failed:   rep.Failed,
		Duration: duration,
	})
}
