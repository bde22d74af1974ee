package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

// AddSolves upserts the one-row-per-user-per-day counter. Concurrent solves
// on the same day land on the same row through the unique constraint.
func (r *PostgresActivityRepository) AddSolves(ctx context.Context, userID, date string, count int) (*domain.DailyActivity, error) {
	query := `
		INSERT INTO daily_activities (id, user_id, activity_date, solved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, activity_date)
		DO UPDATE SET solved = daily_activities.solved + EXCLUDED.solved,
		              updated_at = NOW()
		RETURNING id, user_id, activity_date, solved, created_at, updated_at`

	var entry domain.DailyActivity
	err := r.db.GetContext(ctx, &entry, query, uuid.NewString(), userID, date, count)
	if err != nil {
		return nil, fmt.Errorf("repository: add solves failed: %w", err)
	}

	return &entry, nil
}

func (r *PostgresActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyActivity, error) {
	entries := []*domain.DailyActivity{}

	query := `
		SELECT id, user_id, activity_date, solved, created_at, updated_at
		FROM daily_activities
		WHERE user_id = $1
		ORDER BY activity_date ASC`

	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list activity failed: %w", err)
	}

	return entries, nil
}

func (r *PostgresActivityRepository) ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyActivity, error) {
	entries := []*domain.DailyActivity{}

	query := `
		SELECT id, user_id, activity_date, solved, created_at, updated_at
		FROM daily_activities
		WHERE user_id = $1
		  AND activity_date >= $2
		  AND activity_date <= $3
		ORDER BY activity_date ASC`

	err := r.db.SelectContext(ctx, &entries, query, userID,
		from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("repository: list activity range failed: %w", err)
	}

	return entries, nil
}
