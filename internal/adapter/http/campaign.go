package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"autodm/internal/adapter/usecase"
	"autodm/internal/core/domain"
	"autodm/internal/core/port"
)

// accountIDHeader carries the already-authenticated owner identifier.
// Session verification happens upstream of this service.
const accountIDHeader = "X-Account-ID"

type campaignRequest struct {
	Keyword         string `json:"keyword"`
	MessageTemplate string `json:"message_template"`
	Status          string `json:"status"`
}

type campaignResponse struct {
	ID              int64  `json:"id"`
	Keyword         string `json:"keyword"`
	MessageTemplate string `json:"message_template"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func (h *Handler) accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get(accountIDHeader), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, "missing or invalid "+accountIDHeader+" header")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.campaigns.Create(r.Context(), accountID, port.CampaignInput{
		Keyword:         req.Keyword,
		MessageTemplate: req.MessageTemplate,
		Status:          req.Status,
	})
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}
	campaigns, err := h.campaigns.List(r.Context(), accountID)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req campaignRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.campaigns.Update(r.Context(), accountID, id, port.CampaignInput{
		Keyword:         req.Keyword,
		MessageTemplate: req.MessageTemplate,
		Status:          req.Status,
	})
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err = h.campaigns.Delete(r.Context(), accountID, id); err != nil {
		h.campaignError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) campaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrKeywordTaken):
		h.writeError(w, http.StatusConflict, "a campaign with this keyword already exists")
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "campaign not found")
	default:
		h.logger.Error("campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Keyword:         c.Keyword,
		MessageTemplate: c.MessageTemplate,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
