package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"autodm/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling. The verify token and app secret come from configuration; the
// app secret is optional and enables payload signature checks when set.
type Handler struct {
	webhooks    port.WebhookUseCase
	campaigns   port.CampaignUseCase
	logger      *slog.Logger
	verifyToken string
	appSecret   string
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(webhooks port.WebhookUseCase, campaigns port.CampaignUseCase, logger *slog.Logger, verifyToken, appSecret string) *Handler {
	h := &Handler{
		webhooks:    webhooks,
		campaigns:   campaigns,
		logger:      logger,
		verifyToken: verifyToken,
		appSecret:   appSecret,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/webhook", h.handleWebhookVerify)
	r.Post("/webhook", h.handleWebhookEvent)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleCampaignList)
		r.Post("/campaigns", h.handleCampaignCreate)
		r.Put("/campaigns/{id}", h.handleCampaignUpdate)
		r.Delete("/campaigns/{id}", h.handleCampaignDelete)
		r.Get("/analytics", h.handleAnalytics)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
