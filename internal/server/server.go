package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"GoldSignal/internal/metrics"
)

// Handler registers routes on an echo instance.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}

// ServerOption configures Server.
type ServerOption func(*ServerConfig)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the echo router behind a CORS handler.
type Server struct {
	echo   *echo.Echo
	srv    *http.Server
	config *ServerConfig
	log    zerolog.Logger
	addr   net.Addr
}

// NewServer creates the HTTP server. rec may be nil, in which case request
// metrics and /metrics are disabled.
func NewServer(handler Handler, rec *metrics.Recorder, log zerolog.Logger, opts ...ServerOption) *Server {
	cfg := &ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	log = log.With().Str("component", "http").Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newTemplateRenderer()

	e.Use(Recover(log))
	e.Use(RequestLogging(log))
	if rec != nil {
		e.Use(Metrics(rec))
		e.GET("/metrics", echo.WrapHandler(rec.Handler()))
	}

	if handler != nil {
		handler.RegisterRoutes(e)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	})

	return &Server{
		echo:   e,
		config: cfg,
		log:    log,
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      c.Handler(e),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	s.addr = ln.Addr()

	go func() {
		s.log.Info().Str("addr", s.addr.String()).Msg("http server listening")
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("http server error")
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	s.log.Info().Msg("http server stopped")
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() net.Addr { return s.addr }

// Handler returns the full handler chain, CORS included.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// WithHost sets server host.
func WithHost(host string) ServerOption {
	return func(c *ServerConfig) {
		c.Host = host
	}
}

// WithPort sets server port.
func WithPort(port int) ServerOption {
	return func(c *ServerConfig) {
		c.Port = port
	}
}

// WithTimeouts sets read/write timeouts.
func WithTimeouts(read, write time.Duration) ServerOption {
	return func(c *ServerConfig) {
		c.ReadTimeout = read
		c.WriteTimeout = write
	}
}
