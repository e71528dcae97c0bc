// Package gin exposes the assistant over HTTP using gin.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/nxask"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server serves the chat endpoint and health checks.
type Server struct {
	ln     net.Listener
	server *http.Server
	engine *gin.Engine

	// Addr is the listen address, e.g. ":8080".
	Addr string

	assistant nxask.Assistant
	logger    *slog.Logger
	origins   []string
	service   string
	version   string
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to the given origins. By default every
// origin is allowed.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithVersion sets the service name and version reported by health checks.
func WithVersion(service, version string) Option {
	return func(s *Server) {
		s.service = service
		s.version = version
	}
}

// NewServer creates a server answering with assistant.
func NewServer(assistant nxask.Assistant, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		assistant: assistant,
		logger:    logger,
		service:   "nxask",
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger(s.logger))
	s.engine.Use(cors.New(s.corsConfig()))

	NewHealthHandler(s.service, s.version).RegisterRoutes(s.engine)
	s.engine.POST("/api/ai", s.handleAsk)

	s.server = &http.Server{Handler: s.engine}
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("serve", "addr", s.Addr, "err", err)
		}
	}()

	s.logger.Info("listening", "addr", s.ln.Addr().String())
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.origins
	}
	return cfg
}
