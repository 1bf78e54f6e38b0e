package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the default prometheus registry on /metrics
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// NewServer creates a metrics server listening on addr
func NewServer(addr string, logger *log.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in the background until Shutdown is called
func (s *Server) Start() {
	go func() {
		s.logger.Infof("Metrics server listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("Metrics server failed: %v", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight scrapes until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the HTTP handler, mostly useful for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
