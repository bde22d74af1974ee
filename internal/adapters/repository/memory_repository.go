package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

// In-memory repositories, used for local development and tests.

type InMemoryProblemRepository struct {
	store map[string]*domain.Problem

	mu sync.RWMutex
}

func NewInMemoryProblemRepository() *InMemoryProblemRepository {
	return &InMemoryProblemRepository{
		store: make(map[string]*domain.Problem),
	}
}

func (r *InMemoryProblemRepository) Create(ctx context.Context, p *domain.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *p
	r.store[p.ID] = &clone
	return nil
}

func (r *InMemoryProblemRepository) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[id]
	if !ok {
		return nil, domain.ErrProblemNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *InMemoryProblemRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var problems []*domain.Problem
	for _, p := range r.store {
		if p.UserID == userID {
			clone := *p
			problems = append(problems, &clone)
		}
	}

	sort.Slice(problems, func(i, j int) bool {
		return problems[i].CreatedAt.Before(problems[j].CreatedAt)
	})

	return problems, nil
}

func (r *InMemoryProblemRepository) Update(ctx context.Context, p *domain.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[p.ID]; !ok {
		return domain.ErrProblemNotFound
	}

	clone := *p
	r.store[p.ID] = &clone
	return nil
}

type InMemoryActivityRepository struct {
	entries map[string]*domain.DailyActivity // keyed by userID + "|" + date

	mu sync.RWMutex
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{
		entries: make(map[string]*domain.DailyActivity),
	}
}

func (r *InMemoryActivityRepository) AddSolves(ctx context.Context, userID, date string, count int) (*domain.DailyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userID + "|" + date
	now := time.Now().UTC()

	if entry, ok := r.entries[key]; ok {
		entry.Solved += count
		entry.UpdatedAt = now
		clone := *entry
		return &clone, nil
	}

	entry, err := domain.NewDailyActivity(userID, date, count)
	if err != nil {
		return nil, err
	}
	r.entries[key] = entry

	clone := *entry
	return &clone, nil
}

func (r *InMemoryActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.DailyActivity
	for _, e := range r.entries {
		if e.UserID == userID {
			clone := *e
			entries = append(entries, &clone)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

func (r *InMemoryActivityRepository) ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyActivity, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fromKey := from.Format(domain.DateLayout)
	toKey := to.Format(domain.DateLayout)

	var entries []*domain.DailyActivity
	for _, e := range all {
		if e.Date >= fromKey && e.Date <= toKey {
			entries = append(entries, e)
		}
	}

	return entries, nil
}
