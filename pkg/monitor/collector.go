package monitor

import (
	"sync"
	"time"
)

// EventCollector captures run events and aggregate timing
// data. It is safe for concurrent use: the live server reads
// while the run loop emits.
type EventCollector struct {
	mu       sync.RWMutex
	events   []RunEvent
	handlers []func(RunEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics over the collected
// events.
type CollectorStats struct {
	Suites      int           `json:"suites"`
	CasesTotal  int           `json:"cases_total"`
	CasesPassed int           `json:"cases_passed"`
	CasesFailed int           `json:"cases_failed"`
	StartTime   time.Time     `json:"start_time"`
	Duration    time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]RunEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(
	handler func(RunEvent),
) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event RunEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventSuiteCompleted:
		c.stats.Suites++
	case EventCaseFinished:
		c.stats.CasesTotal++
		if event.Passed {
			c.stats.CasesPassed++
		} else {
			c.stats.CasesFailed++
		}
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(RunEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []RunEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]RunEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
