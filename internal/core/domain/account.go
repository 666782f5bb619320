package domain

import "time"

// Account is a linked Instagram business account. API requests are scoped
// by the account id; linking itself happens outside this service.
type Account struct {
	ID         int64
	IGUserID   string
	IGUsername string
	CreatedAt  time.Time
}

// MediaPost maps a platform media id to its owning account. The dispatcher
// uses it to scope keyword matching to the owner of the commented-on post.
type MediaPost struct {
	MediaID   string
	AccountID int64
	Caption   string
	CreatedAt time.Time
}
