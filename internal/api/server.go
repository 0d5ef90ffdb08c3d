// Package api provides the JSON HTTP API for parsing and resolving
// scripture citations.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/FocuswithJustin/JuniperCite/internal/logging"
	"github.com/FocuswithJustin/JuniperCite/internal/render"
	"github.com/FocuswithJustin/JuniperCite/internal/resolve"
	"github.com/FocuswithJustin/JuniperCite/internal/server"
)

// Server serves the API for one resolver.
type Server struct {
	cfg      Config
	resolver *resolve.Resolver
	render   render.Options
	limiter  *RateLimiter
	started  time.Time
}

// New returns a Server. The resolver supplies both the parser and the
// verse source; opts control /render output.
func New(cfg Config, r *resolve.Resolver, opts render.Options) (*Server, error) {
	if err := cfg.Auth.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	s := &Server{
		cfg:      cfg.withDefaults(),
		resolver: r,
		render:   opts,
		started:  time.Now(),
	}
	if cfg.RateLimitRequests > 0 {
		s.limiter = NewRateLimiter(RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimitRequests,
			BurstSize:         cfg.RateLimitBurst,
		})
	}
	return s, nil
}

// routes configures all HTTP routes.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/books", s.handleBooks)
	mux.HandleFunc("/lookup", s.handleLookup)
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/merge", s.handleMerge)
	mux.HandleFunc("/resolve", s.handleResolve)
	mux.HandleFunc("/render", s.handleRender)

	return mux
}

// Handler returns the routes wrapped in the middleware chain, outermost
// first: request logging, CORS, rate limiting, authentication, security
// headers, body limit.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = server.LimitBody(s.cfg.MaxInputBytes, s.routes())
	handler = server.SecurityHeaders(server.APICSPConfig(), handler)
	handler = AuthMiddleware(s.cfg.Auth, handler)
	if s.limiter != nil {
		handler = s.limiter.Middleware(handler)
	}
	handler = server.CORS(server.CORSConfig{AllowedOrigins: s.cfg.AllowedOrigins}, handler)
	return logging.CombinedMiddleware(handler)
}

// Start serves on cfg.Port until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if s.limiter != nil {
		go s.limiter.Run(ctx, time.Minute)
	}

	corsMode := "permissive"
	if len(s.cfg.AllowedOrigins) > 0 {
		corsMode = "restricted"
	}
	logging.ServerStartup("cite_api", "http", s.cfg.Port,
		"addr", ln.Addr().String(),
		"source", s.cfg.SourceName,
		"auth", s.cfg.Auth.Enabled,
		"cors", corsMode,
		"rate_limit", s.cfg.RateLimitRequests)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logging.Info("server stopped")
		return nil
	}
}
