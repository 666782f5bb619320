package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data for local development: one linked account, a few
// media posts and keyword campaigns. All inserts are idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var accountID int64
	err := db.QueryRow(ctx, `INSERT INTO accounts (ig_user_id, ig_username)
VALUES ('17841400000000001', 'demo_shop')
ON CONFLICT (ig_user_id) DO UPDATE SET ig_username = EXCLUDED.ig_username
RETURNING id`).Scan(&accountID)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}

	for i := 1; i <= 3; i++ {
		mediaID := fmt.Sprintf("1800000000000000%d", i)
		caption := fmt.Sprintf("Demo post %d", i)
		_, err = db.Exec(ctx, `INSERT INTO media_posts (media_id, account_id, caption)
VALUES ($1, $2, $3) ON CONFLICT (media_id) DO NOTHING`, mediaID, accountID, caption)
		if err != nil {
			return fmt.Errorf("seed media: %w", err)
		}
	}

	campaigns := []struct {
		keyword, template, status string
	}{
		{"promo", "Thanks for your interest! Here is your promo link: https://example.com/promo", "active"},
		{"discount", "Use code WELCOME10 at checkout for 10% off.", "active"},
		{"giveaway", "The giveaway has ended, but stay tuned for the next one!", "paused"},
	}
	for _, c := range campaigns {
		var exists bool
		err = db.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM campaigns WHERE account_id = $1 AND lower(keyword) = lower($2)
)`, accountID, c.keyword).Scan(&exists)
		if err != nil {
			return fmt.Errorf("seed campaign check: %w", err)
		}
		if exists {
			continue
		}
		_, err = db.Exec(ctx, `INSERT INTO campaigns (account_id, keyword, message_template, status)
VALUES ($1, $2, $3, $4)`, accountID, c.keyword, c.template, c.status)
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}
	}

	return nil
}
