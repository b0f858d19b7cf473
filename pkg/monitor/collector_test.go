package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCollector_EmitRecordsEvents(t *testing.T) {
	c := NewEventCollector()
	c.Emit(RunEvent{
		Type:  EventSuiteStarted,
		Suite: "observable",
	})
	c.Emit(RunEvent{
		Type:   EventCaseFinished,
		Suite:  "observable",
		Case:   "a",
		Passed: true,
	})

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventSuiteStarted, events[0].Type)
	assert.False(
		t, events[0].Timestamp.IsZero(),
		"timestamp filled in on emit",
	)
}

func TestEventCollector_StatsAggregation(t *testing.T) {
	c := NewEventCollector()
	c.Emit(RunEvent{
		Type: EventCaseFinished, Passed: true,
	})
	c.Emit(RunEvent{
		Type: EventCaseFinished, Passed: false,
	})
	c.Emit(RunEvent{Type: EventSuiteCompleted})

	stats := c.Stats()
	assert.Equal(t, 1, stats.Suites)
	assert.Equal(t, 2, stats.CasesTotal)
	assert.Equal(t, 1, stats.CasesPassed)
	assert.Equal(t, 1, stats.CasesFailed)
}

func TestEventCollector_HandlersNotified(t *testing.T) {
	c := NewEventCollector()
	var got []RunEvent
	c.OnEvent(func(e RunEvent) {
		got = append(got, e)
	})

	c.Emit(RunEvent{
		Type: EventSuiteStarted, Suite: "s",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "s", got[0].Suite)
}

func TestEventCollector_EventsReturnsCopy(t *testing.T) {
	c := NewEventCollector()
	c.Emit(RunEvent{Type: EventSuiteStarted, Suite: "s"})

	events := c.Events()
	events[0].Suite = "mutated"

	assert.Equal(t, "s", c.Events()[0].Suite)
}
