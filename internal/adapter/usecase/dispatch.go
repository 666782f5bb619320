package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
)

// WebhookService runs the comment pipeline: duplicate suppression, keyword
// matching, persistence and delivery with a public-reply fallback. It
// implements port.WebhookUseCase.
type WebhookService struct {
	repo   port.Repository
	msgr   port.Messenger
	logger *slog.Logger
}

// NewWebhookService creates a pipeline service over the given repository and
// delivery channel.
func NewWebhookService(repo port.Repository, msgr port.Messenger, logger *slog.Logger) *WebhookService {
	return &WebhookService{repo: repo, msgr: msgr, logger: logger}
}

// HandleComment processes one normalized comment event. Errors are returned
// only for store failures before the comment record exists; once the record
// is persisted every downstream failure is converted into a recorded status
// so the webhook can be acknowledged and the platform does not redeliver.
func (s *WebhookService) HandleComment(ctx context.Context, ev domain.CommentEvent) (port.CommentResult, error) {
	// Cheap short-circuit; the conditional insert below is the
	// authoritative guard against concurrent redelivery.
	existing, err := s.repo.FindDeliveryByCommentID(ctx, ev.CommentID)
	if err != nil {
		return port.CommentResult{}, fmt.Errorf("dedup lookup: %w", err)
	}
	if existing != nil {
		s.logger.Info("duplicate comment skipped", slog.String("comment_id", ev.CommentID))
		return port.CommentResult{Outcome: port.OutcomeDuplicate, RecordID: existing.ID}, nil
	}

	campaign, err := s.match(ctx, ev)
	if err != nil {
		return port.CommentResult{}, fmt.Errorf("campaign match: %w", err)
	}

	rec := &domain.DeliveryRecord{
		CommentID:     ev.CommentID,
		CommenterID:   ev.CommenterID,
		CommenterName: ev.CommenterName,
		Text:          ev.Text,
		MediaID:       ev.MediaID,
	}
	if campaign != nil {
		pending := domain.DMStatusPending
		rec.AccountID = &campaign.AccountID
		rec.CampaignID = &campaign.ID
		rec.DMStatus = &pending
	}

	inserted, err := s.repo.CreateDelivery(ctx, rec)
	if err != nil {
		return port.CommentResult{}, fmt.Errorf("persist comment: %w", err)
	}
	if !inserted {
		// Lost the race against a concurrent delivery of the same comment.
		s.logger.Info("duplicate comment rejected by store", slog.String("comment_id", ev.CommentID))
		return port.CommentResult{Outcome: port.OutcomeDuplicate}, nil
	}

	if campaign == nil {
		return port.CommentResult{Outcome: port.OutcomeNoMatch, RecordID: rec.ID}, nil
	}

	outcome := s.deliver(ctx, ev, campaign, rec)
	return port.CommentResult{Outcome: outcome, RecordID: rec.ID, CampaignID: &campaign.ID}, nil
}

// match selects the first active campaign whose keyword occurs in the
// comment text. Matching is scoped to the account owning the commented-on
// media; when the media id is unknown it falls back to scanning all active
// campaigns.
func (s *WebhookService) match(ctx context.Context, ev domain.CommentEvent) (*domain.Campaign, error) {
	owner, err := s.repo.MediaOwner(ctx, ev.MediaID)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.repo.ActiveCampaigns(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].Matches(ev.Text) {
			return &campaigns[i], nil
		}
	}
	return nil, nil
}

// deliver attempts the DM, falls back to a public reply on failure and
// always finalizes the record with a terminal status. Failures past this
// point are logged, never returned.
func (s *WebhookService) deliver(ctx context.Context, ev domain.CommentEvent, campaign *domain.Campaign, rec *domain.DeliveryRecord) port.CommentOutcome {
	status := domain.DMStatusSuccess
	outcome := port.OutcomeDelivered
	detail := "dm sent"

	if dmErr := s.msgr.SendDirectMessage(ctx, ev.CommenterID, campaign.MessageTemplate); dmErr != nil {
		s.logger.Warn("direct message failed, trying public reply",
			slog.String("comment_id", ev.CommentID),
			slog.Int64("campaign_id", campaign.ID),
			slog.Any("error", dmErr))
		if fbErr := s.msgr.ReplyToComment(ctx, ev.CommentID, campaign.MessageTemplate); fbErr != nil {
			s.logger.Warn("fallback reply failed",
				slog.String("comment_id", ev.CommentID),
				slog.Any("error", fbErr))
			status = domain.DMStatusFailed
			outcome = port.OutcomeFailed
			detail = "dm and fallback failed: " + dmErr.Error()
		} else {
			status = domain.DMStatusFallbackDelivered
			outcome = port.OutcomeFallback
			detail = "dm failed, delivered via public reply"
		}
	}

	if err := s.repo.FinalizeDelivery(ctx, rec.ID, status, time.Now().UTC()); err != nil {
		// The comment is captured; incomplete bookkeeping must not fail
		// the webhook.
		s.logger.Error("finalize delivery failed",
			slog.Int64("record_id", rec.ID),
			slog.String("status", status),
			slog.Any("error", err))
	}

	entry := &domain.MessageLog{
		Token:      uuid.NewString(),
		CommentPK:  rec.ID,
		CampaignID: campaign.ID,
		Status:     status,
		Detail:     detail,
	}
	if err := s.repo.AppendMessageLog(ctx, entry); err != nil {
		s.logger.Error("append message log failed",
			slog.Int64("record_id", rec.ID),
			slog.Any("error", err))
	}

	return outcome
}
