// Package httpapi exposes the analyzer as a JSON HTTP API.
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

// DefaultRequestTimeout bounds a single analysis request.
const DefaultRequestTimeout = 10 * time.Second

// Server is the HTTP API server.
type Server struct {
	addr           string
	svc            *application.AnalysisService
	server         *http.Server
	requestTimeout time.Duration
	version        string
}

// NewServer creates an API server around an analysis service.
func NewServer(addr string, svc *application.AnalysisService, version string) *Server {
	return &Server{
		addr:           addr,
		svc:            svc,
		requestTimeout: DefaultRequestTimeout,
		version:        version,
	}
}

// WithRequestTimeout overrides the per-request analysis timeout.
func (s *Server) WithRequestTimeout(d time.Duration) *Server {
	if d > 0 {
		s.requestTimeout = d
	}
	return s
}

// Handler builds the route table. Exposed separately so tests can drive
// it with httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/tasks/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/tasks/suggest", s.handleSuggest)
	mux.HandleFunc("POST /api/tasks/validate", s.handleValidate)
	mux.HandleFunc("GET /api/strategies", s.handleStrategies)
	mux.HandleFunc("GET /api", s.handleInfo)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return requestLogger(mux)
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Task analyzer API starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
