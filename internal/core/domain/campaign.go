package domain

import (
	"strings"
	"time"
)

const (
	CampaignStatusActive = "active"
	CampaignStatusPaused = "paused"
)

// Campaign is a keyword-triggered auto-reply rule owned by one account.
// Only active campaigns participate in matching.
type Campaign struct {
	ID              int64
	AccountID       int64
	Keyword         string
	MessageTemplate string
	Status          string // active, paused
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Matches reports whether the campaign keyword occurs in the comment text.
// Matching is case-folded substring containment. A blank keyword never
// matches; it would otherwise match every comment.
func (c Campaign) Matches(text string) bool {
	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), keyword)
}
