// Package health provides a lightweight HTTP server for health checks and
// Prometheus metrics exposure.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/metrics"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	NextRun   string `json:"next_run,omitempty"`
}

// NextRunner reports the next scheduled refresh, if any.
type NextRunner interface {
	NextRun() time.Time
}

// Server is a lightweight HTTP server exposing health and metrics endpoints.
type Server struct {
	serviceName string
	addr        string
	metricsPath string
	server      *http.Server
	logger      *logrus.Logger
	sched       NextRunner
	mu          sync.RWMutex
	ready       bool
}

// Config holds the configuration for the health server.
type Config struct {
	ServiceName string
	Addr        string
	MetricsPath string
	Logger      *logrus.Logger
	Scheduler   NextRunner
}

// NewServer creates a new health check server.
func NewServer(cfg Config) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = ":8090"
	}
	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	return &Server{
		serviceName: cfg.ServiceName,
		addr:        addr,
		metricsPath: metricsPath,
		logger:      cfg.Logger,
		sched:       cfg.Scheduler,
	}
}

// SetReady marks the service as ready to serve.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start begins serving in the background.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.Handle(s.metricsPath, metrics.Handler())

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("Health server error: %v", err)
		}
	}()
	s.logger.WithField("addr", s.addr).Info("Health server started")
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Service:   s.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if s.sched != nil {
		if next := s.sched.NextRun(); !next.IsZero() {
			resp.NextRun = next.UTC().Format(time.RFC3339)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}
	writeJSON(w, status, HealthResponse{Status: state, Service: s.serviceName})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
