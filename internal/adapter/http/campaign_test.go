package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
	"autodm/internal/core/port/mocks"
)

func newCampaignHandler(t *testing.T) (*Handler, *mocks.MockCampaignUseCase) {
	webhooks := mocks.NewMockWebhookUseCase(t)
	campaigns := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(webhooks, campaigns, logger, "secret-token", ""), campaigns
}

func TestCampaignCreateRequiresAccountHeader(t *testing.T) {
	h, _ := newCampaignHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{"keyword":"promo","message_template":"hi"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignCreateReturns201(t *testing.T) {
	h, campaigns := newCampaignHandler(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	campaigns.EXPECT().
		Create(mock.Anything, int64(7), port.CampaignInput{Keyword: "promo", MessageTemplate: "hi"}).
		Return(&domain.Campaign{
			ID:              3,
			AccountID:       7,
			Keyword:         "promo",
			MessageTemplate: "hi",
			Status:          domain.CampaignStatusActive,
			CreatedAt:       created,
			UpdatedAt:       created,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{"keyword":"promo","message_template":"hi"}`))
	req.Header.Set(accountIDHeader, "7")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"id": 3,
		"keyword": "promo",
		"message_template": "hi",
		"status": "active",
		"created_at": "2026-08-01T12:00:00Z",
		"updated_at": "2026-08-01T12:00:00Z"
	}`, rec.Body.String())
}

func TestCampaignCreateKeywordConflict(t *testing.T) {
	h, campaigns := newCampaignHandler(t)

	campaigns.EXPECT().
		Create(mock.Anything, int64(7), mock.AnythingOfType("port.CampaignInput")).
		Return(nil, port.ErrKeywordTaken)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{"keyword":"promo","message_template":"hi"}`))
	req.Header.Set(accountIDHeader, "7")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCampaignUpdateNotFound(t *testing.T) {
	h, campaigns := newCampaignHandler(t)

	campaigns.EXPECT().
		Update(mock.Anything, int64(7), int64(9), mock.AnythingOfType("port.CampaignInput")).
		Return(nil, port.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/campaigns/9", strings.NewReader(`{"keyword":"promo","message_template":"hi","status":"paused"}`))
	req.Header.Set(accountIDHeader, "7")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCampaignDeleteReturns204(t *testing.T) {
	h, campaigns := newCampaignHandler(t)

	campaigns.EXPECT().Delete(mock.Anything, int64(7), int64(9)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/campaigns/9", nil)
	req.Header.Set(accountIDHeader, "7")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAnalyticsEndpoint(t *testing.T) {
	h, campaigns := newCampaignHandler(t)

	campaigns.EXPECT().Analytics(mock.Anything, int64(7)).Return([]port.CampaignAnalytics{
		{
			CampaignID:      1,
			Keyword:         "promo",
			MessageTemplate: "hi",
			CreatedAt:       "2026-08-01T12:00:00Z",
			Total:           3,
			Delivered:       2,
			Failed:          1,
			EngagementRate:  66.67,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
	req.Header.Set(accountIDHeader, "7")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"analytics": [{
			"campaign_id": 1,
			"keyword": "promo",
			"message_template": "hi",
			"created_at": "2026-08-01T12:00:00Z",
			"total": 3,
			"delivered": 2,
			"failed": 1,
			"engagement_rate": 66.67
		}]
	}`, rec.Body.String())
}
