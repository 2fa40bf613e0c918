package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/service"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Models answers the queries served over HTTP.
type Models interface {
	Regularity(args map[string]any) (service.Regularity, error)
	Steady(args map[string]any) (service.Steady, error)
	Transitions(args map[string]any, from int) (service.Transitions, error)
}

var _ Models = (*service.Service)(nil)

// Server holds the handlers' dependencies.
type Server struct {
	Models  Models
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// NewHandler creates a new HTTP handler for the models.
func NewHandler(models Models, opts ...Option) http.Handler {
	server := &Server{Models: models, Logger: slog.Default()}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Route("/model", func(r chi.Router) {
		r.Get("/regular", server.GetRegular)
		r.Get("/steady", server.GetSteady)
		r.Get("/transitions", server.GetTransitions)
	})
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": boardchain.Version,
	})
}

// GetRegular handles the GET /model/regular request.
func (s *Server) GetRegular(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Models.Regularity(queryArgs(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetSteady handles the GET /model/steady request.
func (s *Server) GetSteady(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Models.Steady(queryArgs(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetTransitions handles the GET /model/transitions?from=S request.
func (s *Server) GetTransitions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("from")
	from, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: from=%q is not a state", domain.ErrUnknownState, raw))
		return
	}
	resp, err := s.Models.Transitions(queryArgs(r), from)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// queryArgs keeps the first non-empty value of each override parameter.
func queryArgs(r *http.Request) map[string]any {
	args := make(map[string]any)
	for key, values := range r.URL.Query() {
		if key == "from" || len(values) == 0 {
			continue
		}
		args[key] = values[0]
	}
	return args
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotRegular):
		return http.StatusConflict
	case errors.Is(err, domain.ErrConfig), errors.Is(err, domain.ErrUnknownState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.Logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
