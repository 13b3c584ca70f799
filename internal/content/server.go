// Package content serves the site's recipes, game cards, hero banner, and
// account endpoints over HTTP, and provides a typed client for them.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tummy-arcade/internal/analytics"
	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/storage"
)

// Store is the persistence the service needs. *storage.Store satisfies it.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error)
	UserByEmail(ctx context.Context, email string) (storage.User, error)
	UserByID(ctx context.Context, id int64) (storage.User, error)
	ListRecipes(ctx context.Context) ([]storage.Card, error)
	ListGames(ctx context.Context) ([]storage.Card, error)
	Hero(ctx context.Context) (storage.Hero, error)
}

// Server handles HTTP requests.
type Server struct {
	store   Store
	cfg     config.ServerConfig
	tokens  *Tokens
	logger  *log.Logger
	tracker *analytics.Tracker
}

// NewServer creates a server. logger and tracker may be nil.
func NewServer(store Store, cfg config.ServerConfig, logger *log.Logger, tracker *analytics.Tracker) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:   store,
		cfg:     cfg,
		tokens:  NewTokens(cfg.SecretKey, cfg.TokenTTL),
		logger:  logger,
		tracker: tracker,
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/me", s.handleMe)
		r.Get("/recipes", s.handleRecipes)
		r.Get("/games", s.handleGames)
		r.Get("/hero", s.handleHero)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("content service listening", "address", s.cfg.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Headers are already sent
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, msg string) {
	writeJSON(w, statusFor(err), errorBody{Error: msg})
}
