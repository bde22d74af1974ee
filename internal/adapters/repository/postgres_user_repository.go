package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

// platform_stats is a jsonb snapshot read separately; listing columns here
// keeps sqlx struct scans stable when that column evolves.
const userColumns = `
	SELECT id, username, email, password_hash,
	       leetcode_handle, codeforces_handle,
	       current_streak, max_streak, daily_goal,
	       created_at, updated_at
	FROM users`

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash,
			leetcode_handle, codeforces_handle,
			current_streak, max_streak, daily_goal,
			created_at, updated_at
		) VALUES (
			:id, :username, :email, :password_hash,
			:leetcode_handle, :codeforces_handle,
			:current_streak, :max_streak, :daily_goal,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User

	query := userColumns + ` WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by id failed: %w", err)
	}

	return &user, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	query := userColumns + ` WHERE email = $1`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by email failed: %w", err)
	}

	return &user, nil
}

func (r *PostgresUserRepository) UpdateHandles(ctx context.Context, id, leetcode, codeforces string) error {
	query := `
		UPDATE users
		SET leetcode_handle = $1, codeforces_handle = $2, updated_at = NOW()
		WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, leetcode, codeforces, id)
	if err != nil {
		return fmt.Errorf("repository: update handles failed: %w", err)
	}

	return requireRow(res, domain.ErrUserNotFound)
}

func (r *PostgresUserRepository) UpdatePlatformStats(ctx context.Context, id string, handles *domain.PlatformHandles) error {
	payload, err := json.Marshal(handles)
	if err != nil {
		return fmt.Errorf("repository: marshal platform stats failed: %w", err)
	}

	query := `
		UPDATE users
		SET platform_stats = $1, updated_at = NOW()
		WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, payload, id)
	if err != nil {
		return fmt.Errorf("repository: update platform stats failed: %w", err)
	}

	return requireRow(res, domain.ErrUserNotFound)
}

func (r *PostgresUserRepository) GetPlatformStats(ctx context.Context, id string) (*domain.PlatformHandles, error) {
	var payload []byte

	query := `SELECT platform_stats FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &payload, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get platform stats failed: %w", err)
	}

	handles := &domain.PlatformHandles{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, handles); err != nil {
			return nil, fmt.Errorf("repository: unmarshal platform stats failed: %w", err)
		}
	}

	return handles, nil
}

func (r *PostgresUserRepository) UpdateStreaks(ctx context.Context, id string, current, max int) error {
	query := `
		UPDATE users
		SET current_streak = $1, max_streak = $2, updated_at = NOW()
		WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, current, max, id)
	if err != nil {
		return fmt.Errorf("repository: update streaks failed: %w", err)
	}

	return requireRow(res, domain.ErrUserNotFound)
}

func requireRow(res sql.Result, missing error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return missing
	}
	return nil
}
