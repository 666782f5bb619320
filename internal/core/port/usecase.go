package port

import (
	"context"

	"autodm/internal/core/domain"
)

// CommentOutcome names the way the pipeline disposed of one comment event.
type CommentOutcome string

const (
	// OutcomeDuplicate means the comment id was already processed; nothing
	// was inserted and no delivery was attempted.
	OutcomeDuplicate CommentOutcome = "duplicate"
	// OutcomeNoMatch means the comment was recorded but no active campaign
	// keyword matched.
	OutcomeNoMatch CommentOutcome = "no_match"
	// OutcomeDelivered means the direct message was sent.
	OutcomeDelivered CommentOutcome = "delivered"
	// OutcomeFallback means the DM failed but the public reply succeeded.
	OutcomeFallback CommentOutcome = "fallback"
	// OutcomeFailed means both the DM and the fallback reply failed.
	OutcomeFailed CommentOutcome = "failed"
)

// CommentResult summarizes pipeline disposition of one comment event.
type CommentResult struct {
	Outcome    CommentOutcome
	RecordID   int64
	CampaignID *int64
}

// WebhookUseCase is the primary port for the webhook pipeline: dedup,
// keyword matching, persistence and delivery for one comment event. An error
// is returned only for failures before the comment record is persisted;
// afterwards delivery and bookkeeping failures are absorbed into the result
// so the webhook can still be acknowledged.
type WebhookUseCase interface {
	HandleComment(ctx context.Context, ev domain.CommentEvent) (CommentResult, error)
}

// CampaignInput carries the writable campaign fields for create and update.
type CampaignInput struct {
	Keyword         string
	MessageTemplate string
	Status          string
}

// CampaignUseCase exposes the campaign CRUD and analytics operations behind
// the JSON API. Every operation is scoped to an already-authenticated
// account id supplied by the transport layer.
type CampaignUseCase interface {
	Create(ctx context.Context, accountID int64, in CampaignInput) (*domain.Campaign, error)
	List(ctx context.Context, accountID int64) ([]domain.Campaign, error)
	Update(ctx context.Context, accountID, id int64, in CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, accountID, id int64) error
	// Analytics returns per-campaign engagement counters.
	Analytics(ctx context.Context, accountID int64) ([]CampaignAnalytics, error)
}

// CampaignAnalytics is the reporting DTO returned by Analytics. Engagement
// is the delivered share of captured comments as a percentage.
type CampaignAnalytics struct {
	CampaignID      int64   `json:"campaign_id"`
	Keyword         string  `json:"keyword"`
	MessageTemplate string  `json:"message_template"`
	CreatedAt       string  `json:"created_at"`
	Total           int64   `json:"total"`
	Delivered       int64   `json:"delivered"`
	Failed          int64   `json:"failed"`
	EngagementRate  float64 `json:"engagement_rate"`
}
