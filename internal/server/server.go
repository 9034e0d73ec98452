// Package server exposes a session's task list over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/app"
)

const shutdownTimeout = 5 * time.Second

type requestValues = middleware.RequestLoggerValues

// Options configures the HTTP front-end
type Options struct {
	Addr string
	// Timeout bounds every task list operation
	Timeout time.Duration
}

// Server serves one session. Requests are served concurrently but every
// call into the session holds mu, so exactly one action runs at a time.
type Server struct {
	echo    *echo.Echo
	session *app.Session
	mu      sync.Mutex
	addr    string
	timeout time.Duration
	logger  *log.Logger
}

// New creates a server over the session
func New(session *app.Session, opts Options, logger *log.Logger) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = sonicSerializer{}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogValuesFunc: logRequest(logger),
	}))

	s := &Server{
		echo:    e,
		session: session,
		addr:    opts.Addr,
		timeout: opts.Timeout,
		logger:  logger,
	}
	Register(e, s)
	return s
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.addr).Info("listening")
		errCh <- s.echo.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
