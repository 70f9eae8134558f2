package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	settings *settings

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	started  chan struct{}
	once     sync.Once
}

// New returns a configured Server listening on :8080 by default.
func New(opts ...Option) *Server {
	s := &settings{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Server{settings: s, started: make(chan struct{})}
}

// Started is closed once the listener is bound.
func (s *Server) Started() <-chan struct{} { return s.started }

// Addr returns the bound address after Started is closed, or the configured
// address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.settings.addr
}

// Run serves handler until ctx is cancelled or Shutdown is called.
// It returns nil after a clean shutdown and an error wrapping ErrStart if the
// server could not listen.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.settings.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:      handler,
		ReadTimeout:  s.settings.readTimeout,
		WriteTimeout: s.settings.writeTimeout,
		IdleTimeout:  s.settings.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	srv := s.srv
	s.mu.Unlock()

	s.settings.logger.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))
	close(s.started)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.WithoutCancel(ctx))
		if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) {
			runErr = errors.Join(runErr, serveErr)
		}
	case serveErr := <-errCh:
		if !errors.Is(serveErr, http.ErrServerClosed) {
			runErr = errors.Join(ErrStart, serveErr)
		}
	}
	return runErr
}

// Shutdown stops the server gracefully. It is safe to call repeatedly and
// before Run; only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.settings.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.settings.logger.InfoContext(ctx, "http server stopped")
	})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
