// Package httpapi exposes the FitTrack HTTP/JSON API: credential sign-in and
// sign-up, the session endpoint backing the web client, the dashboard, and
// avatar upload URLs.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/fittrackhq/fittrack/internal/logging"
	"github.com/fittrackhq/fittrack/internal/server/config"
	"github.com/fittrackhq/fittrack/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "fittrack_session"

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr            string
	baseURL         string
	cookieSecure    bool
	sessionValidity time.Duration
	jwtSecret       []byte

	logger    logging.Logger
	users     *services.UserService
	dashboard *services.DashboardService
	avatars   *services.AvatarService
	metrics   *Collector
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ds *services.DashboardService, as *services.AvatarService, m *Collector) *Server {
	return &Server{
		addr:            cfg.EndpointAddr,
		baseURL:         cfg.BaseURL,
		cookieSecure:    cfg.CookieSecure,
		sessionValidity: cfg.SessionValidityDuration,
		jwtSecret:       []byte(cfg.SecretKey),
		logger:          l.With("module", "httpapi"),
		users:           us,
		dashboard:       ds,
		avatars:         as,
		metrics:         m,
	}
}

// Routes builds the full router. Exported for handler tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/session", s.handleSession)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/api/dashboard", s.handleDashboard)
		r.Put("/api/dashboard/goals", s.handleUpdateGoals)

		r.Route("/api/avatar", func(r chi.Router) {
			r.Post("/upload-url", s.handleAvatarUploadURL)
			r.Post("/", s.handleAvatarConfirm)
			r.Get("/url", s.handleAvatarViewURL)
		})
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
