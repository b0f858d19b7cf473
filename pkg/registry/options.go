package registry

import (
	"digital.vasic.lighttest/pkg/logging"
	"digital.vasic.lighttest/pkg/metrics"
	"digital.vasic.lighttest/pkg/report"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(logger logging.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObserver adds a run observer. Observers are notified in
// the order they were added.
func WithObserver(obs RunObserver) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, obs)
	}
}

// WithMetrics sets the metrics sink for suite and case
// outcomes.
func WithMetrics(m metrics.HarnessMetrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithReporter replaces the serializer used by
// RunAllAndReport.
func WithReporter(rep *report.LineReporter) Option {
	return func(r *Registry) {
		r.reporter = rep
	}
}

// WithoutSummaryLine suppresses the trailing "Summary: ..."
// line after the report stream.
func WithoutSummaryLine() Option {
	return func(r *Registry) {
		r.summaryLine = false
	}
}
