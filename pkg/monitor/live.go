package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digital.vasic.lighttest/pkg/metrics"
)

// LiveServer serves live run monitoring over HTTP:
//
//	/ws        WebSocket stream of run events
//	/dashboard JSON snapshot of the current run state
//	/metrics   Prometheus text exposition
//	/health    liveness probe
type LiveServer struct {
	mu        sync.Mutex
	collector *EventCollector
	dashboard *Dashboard
	metrics   *metrics.Collector
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]struct{}
	addr      string
	server    *http.Server
}

// NewLiveServer creates a live monitoring server. The metrics
// collector may be nil, in which case /metrics responds 404.
func NewLiveServer(
	addr string,
	collector *EventCollector,
	dashboard *Dashboard,
	m *metrics.Collector,
) *LiveServer {
	return &LiveServer{
		collector: collector,
		dashboard: dashboard,
		metrics:   m,
		addr:      addr,
		clients:   make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The harness serves localhost dashboards; no
			// origin policy is enforced.
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Start begins serving until ctx is cancelled. It blocks, so
// callers usually run it in its own goroutine.
func (s *LiveServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/dashboard", s.handleDashboard)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc(
		"/health",
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		},
	)

	s.mu.Lock()
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := s.server
	s.mu.Unlock()

	// Broadcast every collected event to connected clients.
	s.collector.OnEvent(func(event RunEvent) {
		s.dashboard.UpdateFromEvent(event)
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop closes client connections and shuts the server down.
func (s *LiveServer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})

	if s.server != nil {
		s.server.Close()
	}
}

// handleWS upgrades the connection and replays the events
// collected so far before streaming new ones.
func (s *LiveServer) handleWS(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	backlog := s.collector.Events()
	for _, event := range backlog {
		data, marshalErr := json.Marshal(event)
		if marshalErr != nil {
			continue
		}
		if writeErr := conn.WriteMessage(
			websocket.TextMessage, data,
		); writeErr != nil {
			conn.Close()
			return
		}
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain reads so close/ping frames are processed; the
	// stream is write-only from the client's perspective.
	go func() {
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

func (s *LiveServer) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		conn.Close()
	}
}

// broadcast sends one message to every connected client,
// dropping clients whose writes fail.
func (s *LiveServer) broadcast(data []byte) {
	s.mu.Lock()
	conns := make(
		[]*websocket.Conn, 0, len(s.clients),
	)
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(
			websocket.TextMessage, data,
		); err != nil {
			s.dropClient(conn)
		}
	}
}

func (s *LiveServer) handleDashboard(
	w http.ResponseWriter, _ *http.Request,
) {
	snapshot := s.dashboard.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&snapshot)
}

func (s *LiveServer) handleMetrics(
	w http.ResponseWriter, r *http.Request,
) {
	if s.metrics == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set(
		"Content-Type", "text/plain; version=0.0.4",
	)
	s.metrics.WritePrometheus(w)
}
