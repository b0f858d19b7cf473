package monitor

import (
	"sync"
	"time"
)

// Dashboard provides a real-time snapshot of harness execution
// state, updated from run events.
type Dashboard struct {
	mu        sync.RWMutex
	RunID     string                 `json:"run_id"`
	StartTime time.Time              `json:"start_time"`
	Suites    map[string]*SuiteState `json:"suites"`
	Summary   DashboardSummary       `json:"summary"`
}

// SuiteState represents the current state of one suite in the
// dashboard.
type SuiteState struct {
	Name        string `json:"name"`
	Status      string `json:"status"` // running, passed, failed
	CasesRun    int    `json:"cases_run"`
	CasesFailed int    `json:"cases_failed"`
	Message     string `json:"message,omitempty"`
}

// DashboardSummary holds aggregate stats for the dashboard.
type DashboardSummary struct {
	Suites      int     `json:"suites"`
	CasesTotal  int     `json:"cases_total"`
	CasesPassed int     `json:"cases_passed"`
	CasesFailed int     `json:"cases_failed"`
	PassRate    float64 `json:"pass_rate"`
	Elapsed     string  `json:"elapsed"`
}

// NewDashboard creates a dashboard for the given run.
func NewDashboard(runID string) *Dashboard {
	return &Dashboard{
		RunID:     runID,
		StartTime: time.Now(),
		Suites:    make(map[string]*SuiteState),
	}
}

// UpdateFromEvent folds one run event into the snapshot.
func (d *Dashboard) UpdateFromEvent(event RunEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	state, exists := d.Suites[event.Suite]
	if !exists {
		state = &SuiteState{Name: event.Suite}
		d.Suites[event.Suite] = state
	}

	switch event.Type {
	case EventSuiteStarted:
		state.Status = "running"
	case EventCaseFinished:
		state.CasesRun++
		d.Summary.CasesTotal++
		if event.Passed {
			d.Summary.CasesPassed++
		} else {
			state.CasesFailed++
			d.Summary.CasesFailed++
		}
	case EventSuiteCompleted:
		if event.Passed {
			state.Status = "passed"
		} else {
			state.Status = "failed"
		}
		state.Message = event.Message
		d.Summary.Suites++
	}

	if d.Summary.CasesTotal > 0 {
		d.Summary.PassRate =
			float64(d.Summary.CasesPassed) /
				float64(d.Summary.CasesTotal)
	}
	d.Summary.Elapsed =
		time.Since(d.StartTime).Truncate(
			time.Millisecond,
		).String()
}

// Snapshot returns a copy of the current dashboard state.
func (d *Dashboard) Snapshot() Dashboard {
	d.mu.RLock()
	defer d.mu.RUnlock()

	suites := make(
		map[string]*SuiteState, len(d.Suites),
	)
	for k, v := range d.Suites {
		copied := *v
		suites[k] = &copied
	}
	return Dashboard{
		RunID:     d.RunID,
		StartTime: d.StartTime,
		Suites:    suites,
		Summary:   d.Summary,
	}
}
