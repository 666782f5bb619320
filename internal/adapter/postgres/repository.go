package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autodm/internal/core/domain"
	"autodm/internal/core/port"
)

// Repository implements port.Repository using pgxpool for PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindDeliveryByCommentID returns the delivery record for a platform comment
// id, or nil when the comment has not been seen.
func (r *Repository) FindDeliveryByCommentID(ctx context.Context, commentID string) (*domain.DeliveryRecord, error) {
	var rec domain.DeliveryRecord
	err := r.pool.QueryRow(ctx, `SELECT id, comment_id, account_id, campaign_id, commenter_id, commenter_name, comment_text, media_id, replied, replied_at, dm_status, created_at
FROM comments WHERE comment_id = $1`, commentID).
		Scan(&rec.ID, &rec.CommentID, &rec.AccountID, &rec.CampaignID, &rec.CommenterID, &rec.CommenterName, &rec.Text, &rec.MediaID, &rec.Replied, &rec.RepliedAt, &rec.DMStatus, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateDelivery inserts a delivery record. The unique constraint on
// comment_id makes the insert the authoritative idempotency guard: a
// concurrent duplicate observes no returned row and reports inserted=false.
func (r *Repository) CreateDelivery(ctx context.Context, rec *domain.DeliveryRecord) (bool, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO comments
    (comment_id, account_id, campaign_id, commenter_id, commenter_name, comment_text, media_id, replied, dm_status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,false,$8,now())
ON CONFLICT (comment_id) DO NOTHING
RETURNING id, created_at`,
		rec.CommentID, rec.AccountID, rec.CampaignID, rec.CommenterID, rec.CommenterName, rec.Text, rec.MediaID, rec.DMStatus).
		Scan(&rec.ID, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FinalizeDelivery writes the terminal delivery outcome for a record.
func (r *Repository) FinalizeDelivery(ctx context.Context, id int64, dmStatus string, repliedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE comments SET dm_status = $2, replied = true, replied_at = $3 WHERE id = $1`,
		id, dmStatus, repliedAt)
	return err
}

// AppendMessageLog appends one delivery-audit row.
func (r *Repository) AppendMessageLog(ctx context.Context, entry *domain.MessageLog) error {
	entry.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO message_logs (token, comment_pk, campaign_id, status, detail, created_at)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		entry.Token, entry.CommentPK, entry.CampaignID, entry.Status, entry.Detail, entry.CreatedAt).
		Scan(&entry.ID)
}

// MediaOwner resolves the account owning a media post, or nil when unknown.
func (r *Repository) MediaOwner(ctx context.Context, mediaID string) (*int64, error) {
	var accountID int64
	err := r.pool.QueryRow(ctx, `SELECT account_id FROM media_posts WHERE media_id = $1`, mediaID).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &accountID, nil
}

// ActiveCampaigns returns active campaigns in id order, optionally scoped to
// one account. The stable ordering makes first-match selection deterministic.
func (r *Repository) ActiveCampaigns(ctx context.Context, accountID *int64) ([]domain.Campaign, error) {
	query := `SELECT id, account_id, keyword, message_template, status, created_at, updated_at
FROM campaigns WHERE status = 'active'`
	args := []interface{}{}
	if accountID != nil {
		query += ` AND account_id = $1`
		args = append(args, *accountID)
	}
	query += ` ORDER BY id`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// CreateCampaign inserts a campaign and populates its id and timestamps.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns (account_id, keyword, message_template, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now()) RETURNING id, created_at, updated_at`,
		c.AccountID, c.Keyword, c.MessageTemplate, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// ListCampaigns returns all campaigns of an account in id order.
func (r *Repository) ListCampaigns(ctx context.Context, accountID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, account_id, keyword, message_template, status, created_at, updated_at
FROM campaigns WHERE account_id = $1 ORDER BY id`, accountID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns one campaign of an account, or nil when absent.
func (r *Repository) GetCampaign(ctx context.Context, accountID, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, account_id, keyword, message_template, status, created_at, updated_at
FROM campaigns WHERE id = $1 AND account_id = $2`, id, accountID).
		Scan(&c.ID, &c.AccountID, &c.Keyword, &c.MessageTemplate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaign persists keyword, template and status changes. It returns
// false when the campaign does not exist or belongs to another account.
func (r *Repository) UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error) {
	err := r.pool.QueryRow(ctx, `UPDATE campaigns SET keyword = $3, message_template = $4, status = $5, updated_at = now()
WHERE id = $1 AND account_id = $2 RETURNING updated_at`,
		c.ID, c.AccountID, c.Keyword, c.MessageTemplate, c.Status).
		Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCampaign removes a campaign of an account. It returns false when
// nothing was deleted.
func (r *Repository) DeleteCampaign(ctx context.Context, accountID, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// KeywordExists reports whether another campaign of the account already uses
// the keyword, case-insensitively.
func (r *Repository) KeywordExists(ctx context.Context, accountID int64, keyword string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM campaigns WHERE account_id = $1 AND lower(keyword) = lower($2) AND id <> $3
)`, accountID, keyword, excludeID).Scan(&exists)
	return exists, err
}

// CampaignStats returns per-campaign delivery counters for the account.
func (r *Repository) CampaignStats(ctx context.Context, accountID int64) ([]port.CampaignStats, error) {
	rows, err := r.pool.Query(ctx, `SELECT
    c.id, c.keyword, c.message_template, c.created_at,
    COUNT(m.id),
    COUNT(m.id) FILTER (WHERE m.dm_status IN ('success','delivered_via_fallback')),
    COUNT(m.id) FILTER (WHERE m.dm_status = 'failed')
FROM campaigns c
LEFT JOIN comments m ON m.campaign_id = c.id
WHERE c.account_id = $1
GROUP BY c.id, c.keyword, c.message_template, c.created_at
ORDER BY c.id`, accountID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignStats, error) {
		var s port.CampaignStats
		err := row.Scan(&s.CampaignID, &s.Keyword, &s.MessageTemplate, &s.CreatedAt, &s.Total, &s.Delivered, &s.Failed)
		return s, err
	})
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.AccountID, &c.Keyword, &c.MessageTemplate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
