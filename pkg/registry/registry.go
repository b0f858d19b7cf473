// Package registry collects registered suites and runs them
// sequentially, serializing the resulting reports into the
// external report stream.
//
// The registry is an explicit handle constructed by the entry
// point and threaded through registration and run calls; there
// is no package-level singleton. It is not safe for concurrent
// use: callers that register or run from multiple goroutines
// must synchronize externally.
package registry

import (
	"context"
	"fmt"
	"io"
	"time"

	"digital.vasic.lighttest/pkg/logging"
	"digital.vasic.lighttest/pkg/metrics"
	"digital.vasic.lighttest/pkg/report"
	"digital.vasic.lighttest/pkg/suite"
)

// Registry is an append-only, insertion-ordered collection of
// suites. Duplicate suite names are permitted and not
// deduplicated; no entry is removed or mutated after insertion.
type Registry struct {
	suites      []*suite.Suite
	logger      logging.Logger
	reporter    *report.LineReporter
	observers   []RunObserver
	metrics     metrics.HarnessMetrics
	summaryLine bool
}

// New creates an empty Registry with the supplied options.
func New(opts ...Option) *Registry {
	r := &Registry{
		reporter:    report.NewLineReporter(),
		metrics:     metrics.Noop{},
		summaryLine: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a suite. Registration order is execution order.
func (r *Registry) Add(s *suite.Suite) {
	r.suites = append(r.suites, s)
}

// Count returns the number of registered suites.
func (r *Registry) Count() int { return len(r.suites) }

// Suites returns a copy of the registered suites in insertion
// order.
func (r *Registry) Suites() []*suite.Suite {
	out := make([]*suite.Suite, len(r.suites))
	copy(out, r.suites)
	return out
}

// RunAll executes every registered suite in insertion order and
// collects every resulting report. A suite whose execution
// fails outright still surfaces as a synthetic failed report,
// so the result holds exactly one report per executed suite.
//
// Cancelling ctx stops the run between suites; cases already
// in flight are never interrupted. Reports collected before
// cancellation are returned.
func (r *Registry) RunAll(
	ctx context.Context,
) []*suite.Report {
	r.metrics.IncRunTotal()
	r.logEvent("run_started",
		logging.F("suites", len(r.suites)),
	)

	reports := make([]*suite.Report, 0, len(r.suites))
	for _, s := range r.suites {
		if err := ctx.Err(); err != nil {
			r.logEvent("run_cancelled",
				logging.F("completed", len(reports)),
				logging.F("reason", err.Error()),
			)
			break
		}
		reports = append(reports, r.runSuite(s))
	}

	return reports
}

// RunAllAndReport runs every suite, writes one serialized
// report line per suite to w, and returns the aggregate
// status: 0 when the cumulative failed-case count is zero and
// no suite-level failure occurred, 1 otherwise. A trailing
// summary line is emitted unless disabled.
func (r *Registry) RunAllAndReport(
	ctx context.Context,
	w io.Writer,
) (int, error) {
	return r.Report(w, r.RunAll(ctx))
}

// Report serializes already-collected reports to w, one line
// per suite plus the optional summary line, and returns the
// aggregate status for them.
func (r *Registry) Report(
	w io.Writer,
	reports []*suite.Report,
) (int, error) {
	var totals report.Totals
	for _, rep := range reports {
		if err := r.reporter.WriteLine(w, rep); err != nil {
			return 1, fmt.Errorf(
				"write report for %s: %w",
				rep.SuiteName, err,
			)
		}
		totals.Add(rep)
	}

	if r.summaryLine {
		if _, err := io.WriteString(
			w, report.SummaryLine(totals)+"\n",
		); err != nil {
			return 1, fmt.Errorf(
				"write summary line: %w", err,
			)
		}
	}

	status := totals.ExitStatus()
	r.logEvent("run_completed",
		logging.F("suites", totals.Suites),
		logging.F("passed", totals.Passed),
		logging.F("failed", totals.Failed),
		logging.F("status", status),
	)
	return status, nil
}

// runSuite executes one suite, containing any panic from the
// suite itself so the failure surfaces as a report instead of
// being dropped.
func (r *Registry) runSuite(
	s *suite.Suite,
) (rep *suite.Report) {
	start := time.Now()

	r.notifyStarted(s)
	r.logEvent("suite_started",
		logging.F("suite", s.Name()),
		logging.F("cases", s.Len()),
	)

	defer func() {
		if rec := recover(); rec != nil {
			rep = &suite.Report{
				SuiteName:        s.Name(),
				SuiteDescription: s.Description(),
				Error: fmt.Sprintf(
					"suite execution failed: %v", rec,
				),
			}
			r.logEvent("suite_error",
				logging.F("suite", s.Name()),
				logging.F("error", rep.Error),
			)
		}

		duration := time.Since(start)
		r.metrics.RecordSuite(
			s.Name(), rep.Success, duration,
		)
		r.notifyCompleted(rep, duration)
		r.logEvent("suite_completed",
			logging.F("suite", s.Name()),
			logging.F("passed", rep.Passed),
			logging.F("failed", rep.Failed),
			logging.F("success", rep.Success),
			logging.F(
				"duration_ms", duration.Milliseconds(),
			),
		)
	}()

	rep = s.RunWith(func(outcome suite.CaseOutcome) {
		r.metrics.RecordCase(s.Name(), outcome.Passed)
		r.notifyCase(s.Name(), outcome)
		if !outcome.Passed {
			r.logEvent("case_failed",
				logging.F("suite", s.Name()),
				logging.F("case", outcome.Name),
				logging.F("error", outcome.Error),
			)
		}
	})
	return rep
}

func (r *Registry) notifyStarted(s *suite.Suite) {
	for _, obs := range r.observers {
		func() {
			defer func() { _ = recover() }()
			obs.OnSuiteStarted(
				s.Name(), s.Description(), s.Len(),
			)
		}()
	}
}

func (r *Registry) notifyCase(
	suiteName string,
	outcome suite.CaseOutcome,
) {
	for _, obs := range r.observers {
		func() {
			defer func() { _ = recover() }()
			obs.OnCaseFinished(suiteName, outcome)
		}()
	}
}

func (r *Registry) notifyCompleted(
	rep *suite.Report,
	duration time.Duration,
) {
	for _, obs := range r.observers {
		func() {
			defer func() { _ = recover() }()
			obs.OnSuiteCompleted(rep, duration)
		}()
	}
}

// logEvent emits a structured log entry if a logger is
// configured.
func (r *Registry) logEvent(
	event string,
	fields ...logging.Field,
) {
	if r.logger == nil {
		return
	}
	r.logger.Info(event, fields...)
}
