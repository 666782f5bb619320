package port

import (
	"context"
	"errors"
	"time"

	"autodm/internal/core/domain"
)

// ErrNotFound is returned by usecases when a requested entity does not exist
// or is not visible to the requesting account.
var ErrNotFound = errors.New("not found")

// ErrKeywordTaken is returned when another campaign of the same account
// already uses the keyword.
var ErrKeywordTaken = errors.New("keyword already in use")

// Repository defines the persistence layer backing the webhook pipeline and
// the campaign API. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe; CreateDelivery in particular must
// be atomic so two concurrent deliveries of the same comment id cannot both
// insert.
type Repository interface {
	// FindDeliveryByCommentID returns the record for a platform comment id,
	// or nil when the comment has not been seen yet.
	FindDeliveryByCommentID(ctx context.Context, commentID string) (*domain.DeliveryRecord, error)
	// CreateDelivery inserts a new delivery record. It returns false (and no
	// error) when a record with the same platform comment id already exists;
	// on success the record's ID and CreatedAt are populated.
	CreateDelivery(ctx context.Context, rec *domain.DeliveryRecord) (bool, error)
	// FinalizeDelivery writes the terminal delivery outcome for a record.
	FinalizeDelivery(ctx context.Context, id int64, dmStatus string, repliedAt time.Time) error
	// AppendMessageLog appends one delivery-audit row.
	AppendMessageLog(ctx context.Context, entry *domain.MessageLog) error

	// MediaOwner resolves the account owning a media post, or nil when the
	// media id is unknown.
	MediaOwner(ctx context.Context, mediaID string) (*int64, error)
	// ActiveCampaigns returns active campaigns in stable id order. When
	// accountID is non-nil the result is scoped to that account.
	ActiveCampaigns(ctx context.Context, accountID *int64) ([]domain.Campaign, error)

	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	ListCampaigns(ctx context.Context, accountID int64) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, accountID, id int64) (*domain.Campaign, error)
	// UpdateCampaign persists keyword, template and status changes. It
	// returns false when no campaign with the given id belongs to the account.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error)
	DeleteCampaign(ctx context.Context, accountID, id int64) (bool, error)
	// KeywordExists reports whether another campaign of the account (id !=
	// excludeID) already uses the keyword, case-insensitively.
	KeywordExists(ctx context.Context, accountID int64, keyword string, excludeID int64) (bool, error)

	// CampaignStats returns per-campaign delivery counters for the account.
	CampaignStats(ctx context.Context, accountID int64) ([]CampaignStats, error)
}

// CampaignStats aggregates delivery outcomes for one campaign. Delivered
// counts both direct-message successes and fallback replies.
type CampaignStats struct {
	CampaignID      int64
	Keyword         string
	MessageTemplate string
	CreatedAt       time.Time
	Total           int64
	Delivered       int64
	Failed          int64
}
