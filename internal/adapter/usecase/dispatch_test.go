package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
	"autodm/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() domain.CommentEvent {
	return domain.CommentEvent{
		CommentID:     "c-100",
		CommenterID:   "u-55",
		CommenterName: "jane",
		Text:          "I want the PROMO link",
		MediaID:       "m-9",
	}
}

func promoCampaign() domain.Campaign {
	return domain.Campaign{
		ID:              1,
		AccountID:       7,
		Keyword:         "promo",
		MessageTemplate: "Check your inbox!",
		Status:          domain.CampaignStatusActive,
	}
}

// TestDuplicateCommentShortCircuits ensures a previously seen comment id
// produces no insert and no delivery attempt.
func TestDuplicateCommentShortCircuits(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	repo.EXPECT().
		FindDeliveryByCommentID(mock.Anything, "c-100").
		Return(&domain.DeliveryRecord{ID: 11, CommentID: "c-100"}, nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeDuplicate {
		t.Fatalf("expected duplicate outcome, got %s", result.Outcome)
	}
	if result.RecordID != 11 {
		t.Fatalf("expected record id 11, got %d", result.RecordID)
	}
}

// TestKeywordMatchIsCaseInsensitive ensures "promo" matches "PROMO" and a
// successful DM finalizes the record with the success status.
func TestKeywordMatchIsCaseInsensitive(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)

	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) {
			if rec.CampaignID == nil || *rec.CampaignID != 1 {
				t.Errorf("expected campaign 1 linked, got %v", rec.CampaignID)
			}
			if rec.DMStatus == nil || *rec.DMStatus != domain.DMStatusPending {
				t.Errorf("expected pending status before delivery, got %v", rec.DMStatus)
			}
			rec.ID = 42
		}).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(nil)
	repo.EXPECT().FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusSuccess, mock.AnythingOfType("time.Time")).Return(nil)
	repo.EXPECT().AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).Return(nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeDelivered {
		t.Fatalf("expected delivered outcome, got %s", result.Outcome)
	}
	if result.RecordID != 42 {
		t.Fatalf("expected record id 42, got %d", result.RecordID)
	}
}

// TestNoMatchSkipsDelivery ensures an unmatched comment is still persisted
// but nothing is sent and no status is assigned.
func TestNoMatchSkipsDelivery(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	ev := testEvent()
	ev.Text = "nice picture"

	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(nil, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, (*int64)(nil)).Return([]domain.Campaign{promoCampaign()}, nil)

	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) {
			if rec.CampaignID != nil || rec.AccountID != nil {
				t.Errorf("unmatched record must not link a campaign")
			}
			if rec.DMStatus != nil {
				t.Errorf("unmatched record must have no dm status, got %q", *rec.DMStatus)
			}
			rec.ID = 7
		}).
		Return(true, nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), ev)
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeNoMatch {
		t.Fatalf("expected no_match outcome, got %s", result.Outcome)
	}
}

// TestFallbackReplyOnDMFailure ensures the public reply runs exactly once
// when the DM fails and the record finalizes as delivered_via_fallback.
func TestFallbackReplyOnDMFailure(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) { rec.ID = 42 }).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(errors.New("messaging denied")).Once()
	msgr.EXPECT().ReplyToComment(mock.Anything, "c-100", "Check your inbox!").Return(nil).Once()

	repo.EXPECT().FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusFallbackDelivered, mock.AnythingOfType("time.Time")).Return(nil)
	repo.EXPECT().AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).Return(nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeFallback {
		t.Fatalf("expected fallback outcome, got %s", result.Outcome)
	}
}

// TestTerminalStatusWhenBothChannelsFail ensures a matched record never
// stays pending: both attempts failing still finalizes with failed.
func TestTerminalStatusWhenBothChannelsFail(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) { rec.ID = 42 }).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(errors.New("messaging denied"))
	msgr.EXPECT().ReplyToComment(mock.Anything, "c-100", "Check your inbox!").Return(errors.New("reply denied"))

	repo.EXPECT().FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusFailed, mock.AnythingOfType("time.Time")).Return(nil)
	repo.EXPECT().AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).Return(nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", result.Outcome)
	}
}

// TestInsertRaceReportsDuplicate covers the second writer losing the
// conditional insert: the pipeline stops without any delivery attempt.
func TestInsertRaceReportsDuplicate(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)
	repo.EXPECT().CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).Return(false, nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeDuplicate {
		t.Fatalf("expected duplicate outcome, got %s", result.Outcome)
	}
}

// TestEmptyKeywordNeverMatches guards against a blank keyword matching
// every comment.
func TestEmptyKeywordNeverMatches(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	blank := promoCampaign()
	blank.Keyword = "   "

	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(nil, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, (*int64)(nil)).Return([]domain.Campaign{blank}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) { rec.ID = 5 }).
		Return(true, nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeNoMatch {
		t.Fatalf("expected no_match outcome, got %s", result.Outcome)
	}
}

// TestFirstMatchWins ensures matching stops at the first active campaign in
// store order, with no longest-match resolution.
func TestFirstMatchWins(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	first := promoCampaign()
	second := domain.Campaign{
		ID:              2,
		AccountID:       7,
		Keyword:         "promo link",
		MessageTemplate: "longer keyword, never reached",
		Status:          domain.CampaignStatusActive,
	}

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{first, second}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) {
			if rec.CampaignID == nil || *rec.CampaignID != 1 {
				t.Errorf("expected first campaign to win, got %v", rec.CampaignID)
			}
			rec.ID = 42
		}).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(nil)
	repo.EXPECT().FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusSuccess, mock.AnythingOfType("time.Time")).Return(nil)
	repo.EXPECT().AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).Return(nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	if _, err := svc.HandleComment(context.Background(), testEvent()); err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
}

// TestStoreErrorBeforeInsertPropagates ensures a store failure before the
// record exists surfaces to the handler (which answers 500 so the platform
// redelivers).
func TestStoreErrorBeforeInsertPropagates(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(nil, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, (*int64)(nil)).Return(nil, errors.New("connection refused"))

	svc := NewWebhookService(repo, msgr, discardLogger())

	if _, err := svc.HandleComment(context.Background(), testEvent()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// TestFinalizeFailureStillAcknowledged ensures a store error after the
// initial insert is absorbed: the comment was captured, the webhook must
// still succeed.
func TestFinalizeFailureStillAcknowledged(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) { rec.ID = 42 }).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(nil)
	repo.EXPECT().
		FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusSuccess, mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))
	repo.EXPECT().
		AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).
		Return(errors.New("connection reset"))

	svc := NewWebhookService(repo, msgr, discardLogger())

	result, err := svc.HandleComment(context.Background(), testEvent())
	if err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
	if result.Outcome != port.OutcomeDelivered {
		t.Fatalf("expected delivered outcome, got %s", result.Outcome)
	}
}

// TestFinalizeTimestampIsRecent sanity-checks the replied_at timestamp
// passed to the store.
func TestFinalizeTimestampIsRecent(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	msgr := mocks.NewMockMessenger(t)

	owner := int64(7)
	repo.EXPECT().FindDeliveryByCommentID(mock.Anything, "c-100").Return(nil, nil)
	repo.EXPECT().MediaOwner(mock.Anything, "m-9").Return(&owner, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, &owner).Return([]domain.Campaign{promoCampaign()}, nil)
	repo.EXPECT().
		CreateDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryRecord")).
		Run(func(ctx context.Context, rec *domain.DeliveryRecord) { rec.ID = 42 }).
		Return(true, nil)

	msgr.EXPECT().SendDirectMessage(mock.Anything, "u-55", "Check your inbox!").Return(nil)

	start := time.Now().UTC()
	repo.EXPECT().
		FinalizeDelivery(mock.Anything, int64(42), domain.DMStatusSuccess, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, id int64, dmStatus string, repliedAt time.Time) {
			if repliedAt.Before(start) {
				t.Errorf("replied_at %v is before test start %v", repliedAt, start)
			}
		}).
		Return(nil)
	repo.EXPECT().AppendMessageLog(mock.Anything, mock.AnythingOfType("*domain.MessageLog")).Return(nil)

	svc := NewWebhookService(repo, msgr, discardLogger())

	if _, err := svc.HandleComment(context.Background(), testEvent()); err != nil {
		t.Fatalf("HandleComment error: %v", err)
	}
}
