package httpadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"autodm/internal/core/domain"
)

// webhookPayload mirrors the platform's comment notification shape. Only
// the fields the pipeline needs are declared; everything else is ignored.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				ID   string `json:"id"`
				From struct {
					ID       string `json:"id"`
					Username string `json:"username"`
				} `json:"from"`
				Text  string `json:"text"`
				Media struct {
					ID string `json:"id"`
				} `json:"media"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// extractCommentEvent normalizes the first entry's first change into a
// CommentEvent. It returns false for payloads that are not comment events
// (likes, story insights and other webhook subtypes lack the comment id,
// commenter or text fields).
func extractCommentEvent(payload webhookPayload) (domain.CommentEvent, bool) {
	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return domain.CommentEvent{}, false
	}
	value := payload.Entry[0].Changes[0].Value
	if value.ID == "" || value.From.ID == "" || value.Text == "" {
		return domain.CommentEvent{}, false
	}
	name := value.From.Username
	if name == "" {
		name = "Unknown"
	}
	return domain.CommentEvent{
		CommentID:     value.ID,
		CommenterID:   value.From.ID,
		CommenterName: name,
		Text:          value.Text,
		MediaID:       value.Media.ID,
	}, true
}

// handleWebhookVerify answers the platform's subscription handshake. The
// literal challenge is echoed back when the mode is "subscribe" and the
// verify token matches; anything else is forbidden.
func (h *Handler) handleWebhookVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("hub.mode")
	token := q.Get("hub.verify_token")
	challenge := q.Get("hub.challenge")

	if mode == "subscribe" && h.verifyToken != "" && token == h.verifyToken {
		h.logger.Info("webhook verified")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}

	h.logger.Warn("webhook verification failed", slog.String("mode", mode))
	http.Error(w, "verification failed", http.StatusForbidden)
}

// handleWebhookEvent ingests a comment notification. The platform retries
// on non-2xx responses, so irrelevant and malformed payloads are still
// acknowledged with success; only a store failure before the comment record
// exists produces a 500.
func (h *Handler) handleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if h.appSecret != "" && !h.validSignature(r, raw) {
		h.writeError(w, http.StatusForbidden, "invalid signature")
		return
	}

	var payload webhookPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		// Not retryable; acknowledge so the platform does not redeliver.
		h.logger.Warn("malformed webhook payload", slog.Any("error", err))
		h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	ev, ok := extractCommentEvent(payload)
	if !ok {
		h.logger.Debug("ignoring non-comment webhook event")
		h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	result, err := h.webhooks.HandleComment(r.Context(), ev)
	if err != nil {
		h.logger.Error("webhook processing failed",
			slog.String("comment_id", ev.CommentID),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "webhook failed")
		return
	}

	h.logger.Info("comment processed",
		slog.String("comment_id", ev.CommentID),
		slog.String("outcome", string(result.Outcome)))
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// validSignature checks X-Hub-Signature-256 against an HMAC-SHA256 of the
// raw body keyed with the app secret.
func (h *Handler) validSignature(r *http.Request, body []byte) bool {
	sig := strings.TrimSpace(r.Header.Get("X-Hub-Signature-256"))
	if !strings.HasPrefix(sig, "sha256=") {
		return false
	}
	provided, err := hex.DecodeString(strings.TrimPrefix(sig, "sha256="))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.appSecret))
	_, _ = mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
