package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"bisub/internal/config"
	"bisub/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	version string

	lockPath string
	lock     *flock.Flock

	mu       sync.Mutex
	listener net.Listener
	http     *http.Server
	done     chan struct{}
	running  atomic.Bool
}

// New constructs a server from configuration. It does not bind or lock.
func New(cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server requires config")
	}
	s := &Server{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "server"),
		version:  version,
		lockPath: cfg.LockPath(),
		lock:     flock.New(cfg.LockPath()),
	}
	return s, nil
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware(s.cfg.Server.Token, h)
	}

	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/merge", guard(s.handleMerge))
	mux.HandleFunc("POST /api/check/format", guard(s.handleCheckFormat))
	mux.HandleFunc("POST /api/check/symbols", guard(s.handleCheckSymbols))
	mux.HandleFunc("POST /ajax_check_format", guard(s.handleCheckFormat))
	mux.HandleFunc("POST /ajax_check_symbols", guard(s.handleCheckSymbols))

	return s.requestIDMiddleware(mux)
}

// Start acquires the instance lock, binds the configured address and serves
// until ctx is cancelled or Stop is called. A stopped server can be started
// again.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return errors.New("server already running")
	}
	if err := s.cfg.EnsureDirectories(); err != nil {
		return err
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another bisub server is already using %s", s.lockPath)
	}

	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}
	httpServer := s.newHTTPServer()
	done := make(chan struct{})
	s.listener = listener
	s.http = httpServer
	s.done = done
	s.running.Store(true)

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithContext(s.logger, "api server error", "server_error", logging.Error(err))
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.String("lock", s.lockPath),
		logging.Bool("auth", s.cfg.Server.Token != ""),
	)
	return nil
}

// Stop shuts the server down gracefully and releases the lock. It is safe to
// call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.done)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("graceful shutdown failed", logging.Error(err))
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release server lock", logging.Error(err))
	}
	s.logger.Info("api server stopped")
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Server.Bind
}

// Running reports whether the server is serving.
func (s *Server) Running() bool {
	return s.running.Load()
}
