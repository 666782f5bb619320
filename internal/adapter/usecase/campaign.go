package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
)

// CampaignService implements port.CampaignUseCase: the campaign CRUD and
// analytics operations behind the JSON API.
type CampaignService struct {
	repo port.Repository
}

// NewCampaignService creates a campaign service over the repository.
func NewCampaignService(repo port.Repository) *CampaignService {
	return &CampaignService{repo: repo}
}

// ErrInvalidInput is returned when a campaign payload fails validation.
var ErrInvalidInput = errors.New("invalid campaign input")

func validateInput(in *port.CampaignInput) error {
	in.Keyword = strings.TrimSpace(in.Keyword)
	in.MessageTemplate = strings.TrimSpace(in.MessageTemplate)
	if in.Keyword == "" {
		return fmt.Errorf("%w: keyword is required", ErrInvalidInput)
	}
	if in.MessageTemplate == "" {
		return fmt.Errorf("%w: message template is required", ErrInvalidInput)
	}
	switch in.Status {
	case "":
		in.Status = domain.CampaignStatusActive
	case domain.CampaignStatusActive, domain.CampaignStatusPaused:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	return nil
}

// Create validates the input, soft-checks keyword uniqueness for the account
// and inserts the campaign.
func (s *CampaignService) Create(ctx context.Context, accountID int64, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	taken, err := s.repo.KeywordExists(ctx, accountID, in.Keyword, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, port.ErrKeywordTaken
	}
	c := &domain.Campaign{
		AccountID:       accountID,
		Keyword:         in.Keyword,
		MessageTemplate: in.MessageTemplate,
		Status:          in.Status,
	}
	if err = s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the account's campaigns.
func (s *CampaignService) List(ctx context.Context, accountID int64) ([]domain.Campaign, error) {
	return s.repo.ListCampaigns(ctx, accountID)
}

// Update replaces the writable fields of a campaign. Status transitions
// (active/paused) ride this operation.
func (s *CampaignService) Update(ctx context.Context, accountID, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	taken, err := s.repo.KeywordExists(ctx, accountID, in.Keyword, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, port.ErrKeywordTaken
	}
	c := &domain.Campaign{
		ID:              id,
		AccountID:       accountID,
		Keyword:         in.Keyword,
		MessageTemplate: in.MessageTemplate,
		Status:          in.Status,
	}
	found, err := s.repo.UpdateCampaign(ctx, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, port.ErrNotFound
	}
	return c, nil
}

// Delete removes a campaign of the account.
func (s *CampaignService) Delete(ctx context.Context, accountID, id int64) error {
	found, err := s.repo.DeleteCampaign(ctx, accountID, id)
	if err != nil {
		return err
	}
	if !found {
		return port.ErrNotFound
	}
	return nil
}

// Analytics returns per-campaign delivery counters with an engagement rate:
// the delivered share of captured comments as a percentage, rounded to two
// decimals.
func (s *CampaignService) Analytics(ctx context.Context, accountID int64) ([]port.CampaignAnalytics, error) {
	stats, err := s.repo.CampaignStats(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]port.CampaignAnalytics, 0, len(stats))
	for _, st := range stats {
		rate := 0.0
		if st.Total > 0 {
			rate = float64(st.Delivered) / float64(st.Total) * 100
			rate = float64(int64(rate*100+0.5)) / 100
		}
		out = append(out, port.CampaignAnalytics{
			CampaignID:      st.CampaignID,
			Keyword:         st.Keyword,
			MessageTemplate: st.MessageTemplate,
			CreatedAt:       st.CreatedAt.UTC().Format(time.RFC3339),
			Total:           st.Total,
			Delivered:       st.Delivered,
			Failed:          st.Failed,
			EngagementRate:  rate,
		})
	}
	return out, nil
}
