package httpadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
	"autodm/internal/core/port/mocks"
)

const commentPayload = `{
  "entry": [{
    "changes": [{
      "value": {
        "id": "c-100",
        "from": {"id": "u-55", "username": "jane"},
        "text": "send me the promo",
        "media": {"id": "m-9"}
      }
    }]
  }]
}`

func newTestHandler(t *testing.T, appSecret string) (*Handler, *mocks.MockWebhookUseCase) {
	webhooks := mocks.NewMockWebhookUseCase(t)
	campaigns := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(webhooks, campaigns, logger, "secret-token", appSecret), webhooks
}

func TestWebhookVerifySucceeds(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "12345", rec.Body.String())
}

func TestWebhookVerifyRejectsBadToken(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookVerifyRejectsWrongMode(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookEventDispatchesComment(t *testing.T) {
	h, webhooks := newTestHandler(t, "")

	webhooks.EXPECT().
		HandleComment(mock.Anything, domain.CommentEvent{
			CommentID:     "c-100",
			CommenterID:   "u-55",
			CommenterName: "jane",
			Text:          "send me the promo",
			MediaID:       "m-9",
		}).
		Return(port.CommentResult{Outcome: port.OutcomeDelivered, RecordID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(commentPayload))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

// Non-comment payloads (likes and other webhook subtypes) must still be
// acknowledged with success so the platform does not redeliver them.
func TestWebhookEventAcknowledgesNonCommentPayload(t *testing.T) {
	h, _ := newTestHandler(t, "")

	payload := `{"entry":[{"changes":[{"value":{"like_count": 3}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestWebhookEventAcknowledgesMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestWebhookEventEmptyEntryAcknowledged(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"entry":[]}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookEventStoreFailureReturns500(t *testing.T) {
	h, webhooks := newTestHandler(t, "")

	webhooks.EXPECT().
		HandleComment(mock.Anything, mock.AnythingOfType("domain.CommentEvent")).
		Return(port.CommentResult{}, io.ErrUnexpectedEOF)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(commentPayload))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWebhookEventRejectsBadSignature(t *testing.T) {
	h, _ := newTestHandler(t, "app-secret")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(commentPayload))
	req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookEventAcceptsValidSignature(t *testing.T) {
	h, webhooks := newTestHandler(t, "app-secret")

	webhooks.EXPECT().
		HandleComment(mock.Anything, mock.AnythingOfType("domain.CommentEvent")).
		Return(port.CommentResult{Outcome: port.OutcomeNoMatch}, nil)

	mac := hmac.New(sha256.New, []byte("app-secret"))
	mac.Write([]byte(commentPayload))
	sig := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(commentPayload))
	req.Header.Set("X-Hub-Signature-256", sig)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractCommentEventDefaultsUsername(t *testing.T) {
	var payload webhookPayload
	raw := `{"entry":[{"changes":[{"value":{"id":"c-1","from":{"id":"u-1"},"text":"hello"}}]}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	ev, ok := extractCommentEvent(payload)
	require.True(t, ok)
	require.Equal(t, "Unknown", ev.CommenterName)
}
