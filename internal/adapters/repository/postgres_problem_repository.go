package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

type PostgresProblemRepository struct {
	db *sqlx.DB
}

func NewPostgresProblemRepository(db *sqlx.DB) *PostgresProblemRepository {
	return &PostgresProblemRepository{db: db}
}

func (r *PostgresProblemRepository) Create(ctx context.Context, p *domain.Problem) error {
	query := `
		INSERT INTO problems (
			id, user_id, title, link, topic, difficulty, status,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :link, :topic, :difficulty, :status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrProblemInvalidUser
		}
		return fmt.Errorf("repository: create problem failed: %w", err)
	}

	return nil
}

func (r *PostgresProblemRepository) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	var p domain.Problem

	query := `SELECT * FROM problems WHERE id = $1`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProblemNotFound
		}
		return nil, fmt.Errorf("repository: get problem failed: %w", err)
	}

	return &p, nil
}

func (r *PostgresProblemRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	problems := []*domain.Problem{}

	// Insertion order: the recommender's tie-breaks depend on it.
	query := `
		SELECT * FROM problems
		WHERE user_id = $1
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &problems, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list problems failed: %w", err)
	}

	return problems, nil
}

func (r *PostgresProblemRepository) Update(ctx context.Context, p *domain.Problem) error {
	query := `
		UPDATE problems
		SET title = :title, link = :link, topic = :topic,
		    difficulty = :difficulty, status = :status,
		    updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("repository: update problem failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProblemNotFound
	}

	return nil
}
