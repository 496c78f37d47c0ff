package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"budget-review/internal/core/port"
)

// Config tunes request handling.
type Config struct {
	// MaxBodyBytes caps request bodies; larger bodies get HTTP 413.
	MaxBodyBytes int64
	// Location is the timezone request dates are read in.
	Location *time.Location
}

// Handler is the inbound HTTP adapter. It decodes and validates requests,
// delegates to the review and batch use cases and writes the
// {success, data, error} envelope.
type Handler struct {
	reviews      port.ReviewUseCase
	batches      port.BatchUseCase
	logger       *slog.Logger
	validator    *validator.Validate
	maxBodyBytes int64
	loc          *time.Location
	router       chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(reviews port.ReviewUseCase, batches port.BatchUseCase, cfg Config, logger *slog.Logger) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	h := &Handler{
		reviews:      reviews,
		batches:      batches,
		logger:       logger,
		validator:    newValidator(),
		maxBodyBytes: cfg.MaxBodyBytes,
		loc:          cfg.Location,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	// Set before Route so the /api/v1 subrouter inherits them.
	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reviews", h.handleReviews)
		r.Post("/reviews/ignore-warning", h.handleIgnoreWarning)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.ok(w, map[string]string{"status": "ok"})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusNotFound, envelope{Error: "route not found"})
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, envelope{Error: "method not allowed"})
}
