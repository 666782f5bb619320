package httpadapter

import (
	"log/slog"
	"net/http"

	"autodm/internal/core/port"
)

// handleAnalytics returns per-campaign delivery counters for the requesting
// account: total comments captured, delivered (DM or fallback reply),
// failed, and the engagement rate percentage.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}
	analytics, err := h.campaigns.Analytics(r.Context(), accountID)
	if err != nil {
		h.logger.Error("analytics error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]port.CampaignAnalytics{"analytics": analytics})
}
