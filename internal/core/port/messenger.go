package port

import "context"

// Messenger is the outbound delivery channel: the platform messaging and
// commenting API. It is an unreliable remote dependency; implementations
// must bound each call with a timeout.
type Messenger interface {
	// SendDirectMessage sends text as a direct message to the recipient.
	SendDirectMessage(ctx context.Context, recipientID, text string) error
	// ReplyToComment posts text as a public reply to the comment.
	ReplyToComment(ctx context.Context, commentID, text string) error
}
