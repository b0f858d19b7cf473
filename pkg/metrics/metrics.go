// Package metrics records harness execution counters and
// exposes them in the Prometheus text format.
package metrics

import "time"

// HarnessMetrics defines the interface for recording harness
// metrics.
type HarnessMetrics interface {
	// RecordSuite records a completed suite run.
	RecordSuite(name string, success bool, duration time.Duration)
	// RecordCase records a single case outcome.
	RecordCase(suiteName string, passed bool)
	// IncRunTotal increments the total run counter.
	IncRunTotal()
}

// Noop is a no-op implementation of HarnessMetrics useful for
// testing or when metrics collection is disabled.
type Noop struct{}

func (Noop) RecordSuite(_ string, _ bool, _ time.Duration) {}
func (Noop) RecordCase(_ string, _ bool)                   {}
func (Noop) IncRunTotal()                                  {}
