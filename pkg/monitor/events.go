// Package monitor provides live observation of a harness run:
// an event collector, an aggregated dashboard snapshot, and a
// WebSocket server broadcasting events to connected clients.
package monitor

import "time"

// EventType represents the type of run event.
type EventType string

const (
	EventSuiteStarted   EventType = "suite_started"
	EventCaseFinished   EventType = "case_finished"
	EventSuiteCompleted EventType = "suite_completed"
)

// RunEvent represents a lifecycle event during harness
// execution.
type RunEvent struct {
	Type      EventType     `json:"type"`
	Suite     string        `json:"suite"`
	Case      string        `json:"case,omitempty"`
	Passed    bool          `json:"passed"`
	Message   string        `json:"message,omitempty"`
	Total     int           `json:"total,omitempty"`
	Failed    int           `json:"failed,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
