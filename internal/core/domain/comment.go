package domain

import "time"

// Delivery statuses recorded on a matched comment. A matched comment starts
// as pending and always finishes in one of the three terminal states.
// Unmatched comments carry no status at all.
const (
	DMStatusPending           = "pending"
	DMStatusSuccess           = "success"
	DMStatusFailed            = "failed"
	DMStatusFallbackDelivered = "delivered_via_fallback"
)

// CommentEvent is one normalized inbound comment notification. The platform
// comment id is unique per comment and serves as the idempotency key.
type CommentEvent struct {
	CommentID     string
	CommenterID   string
	CommenterName string
	Text          string
	MediaID       string
}

// DeliveryRecord is the persisted form of a CommentEvent plus its delivery
// outcome. AccountID, CampaignID and DMStatus stay nil when no campaign
// matched. The record is mutated exactly once after creation, when the
// dispatcher finalizes the outcome.
type DeliveryRecord struct {
	ID            int64
	CommentID     string
	AccountID     *int64
	CampaignID    *int64
	CommenterID   string
	CommenterName string
	Text          string
	MediaID       string
	Replied       bool
	RepliedAt     *time.Time
	DMStatus      *string
	CreatedAt     time.Time
}

// MessageLog is one row of the delivery audit trail. Every finalized
// delivery attempt appends exactly one log entry.
type MessageLog struct {
	ID         int64
	Token      string
	CommentPK  int64
	CampaignID int64
	Status     string
	Detail     string
	CreatedAt  time.Time
}
