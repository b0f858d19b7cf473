package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.lighttest/pkg/metrics"
)

// startLiveServer binds a free port and starts the server,
// returning its base address.
func startLiveServer(
	t *testing.T,
	collector *EventCollector,
	m *metrics.Collector,
) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := NewLiveServer(
		addr, collector, NewDashboard("test-run"), m,
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go srv.Start(ctx)

	// Wait for the server to come up.
	require.Eventually(t, func() bool {
		resp, getErr := http.Get(
			fmt.Sprintf("http://%s/health", addr),
		)
		if getErr != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	return addr
}

func TestLiveServer_DashboardEndpoint(t *testing.T) {
	collector := NewEventCollector()
	addr := startLiveServer(t, collector, nil)

	collector.Emit(RunEvent{
		Type: EventSuiteStarted, Suite: "observable",
	})

	resp, err := http.Get(
		fmt.Sprintf("http://%s/dashboard", addr),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap Dashboard
	require.NoError(
		t,
		json.NewDecoder(resp.Body).Decode(&snap),
	)
	assert.Equal(t, "test-run", snap.RunID)
	assert.Contains(t, snap.Suites, "observable")
}

func TestLiveServer_MetricsEndpoint(t *testing.T) {
	m := metrics.NewCollector()
	m.IncRunTotal()
	addr := startLiveServer(t, NewEventCollector(), m)

	resp, err := http.Get(
		fmt.Sprintf("http://%s/metrics", addr),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(
		t, string(body), "lighttest_runs_total 1",
	)
}

func TestLiveServer_MetricsAbsentWithoutCollector(t *testing.T) {
	addr := startLiveServer(t, NewEventCollector(), nil)

	resp, err := http.Get(
		fmt.Sprintf("http://%s/metrics", addr),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveServer_WebSocketStreamsEvents(t *testing.T) {
	collector := NewEventCollector()
	addr := startLiveServer(t, collector, nil)

	// Emitted before the client connects: replayed as
	// backlog.
	collector.Emit(RunEvent{
		Type: EventSuiteStarted, Suite: "early",
	})

	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event RunEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "early", event.Suite)

	// Live event after connecting.
	collector.Emit(RunEvent{
		Type:   EventCaseFinished,
		Suite:  "late",
		Case:   "a",
		Passed: true,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "late", event.Suite)
	assert.True(t, event.Passed)
}

func TestLiveServer_StopClosesClients(t *testing.T) {
	collector := NewEventCollector()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := NewLiveServer(
		addr, collector, NewDashboard("run"), nil,
	)
	ctx, cancel := context.WithCancel(context.Background())
	go srv.Start(ctx)

	require.Eventually(t, func() bool {
		resp, getErr := http.Get(
			fmt.Sprintf("http://%s/health", addr),
		)
		if getErr != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	conn, resp, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("ws://%s/ws", addr), nil,
	)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	cancel()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.False(
		t,
		strings.Contains(err.Error(), "timeout"),
		"connection closed by server, not timed out",
	)
}
