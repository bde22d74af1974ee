package services

import (
	"context"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/workers"
)

type ActivityService struct {
	repo     domain.ActivityRepository
	userRepo domain.UserRepository
	worker   *workers.StreakWorker
}

func NewActivityService(repo domain.ActivityRepository, userRepo domain.UserRepository, worker *workers.StreakWorker) *ActivityService {
	return &ActivityService{
		repo:     repo,
		userRepo: userRepo,
		worker:   worker,
	}
}

type RecordSolveInput struct {
	UserID string
	Date   string
	Count  int
}

// TrackerSnapshot is the payload behind the practice tracker page:
// the heatmap data plus the persisted streak counters.
type TrackerSnapshot struct {
	DailyStats    []*domain.DailyActivity `json:"daily_stats"`
	CurrentStreak int                     `json:"current_streak"`
	MaxStreak     int                     `json:"max_streak"`
}

func (s *ActivityService) RecordSolve(ctx context.Context, input RecordSolveInput) (*domain.DailyActivity, error) {
	count := input.Count
	if count == 0 {
		count = 1
	}

	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format(domain.DateLayout)
	}

	// Validate the shape before touching storage; the upsert itself
	// never sees malformed dates or negative counts.
	probe := domain.DailyActivity{UserID: input.UserID, Date: date, Solved: count}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.AddSolves(ctx, input.UserID, date, count)
	if err != nil {
		return nil, err
	}

	s.worker.Enqueue(input.UserID)

	return entry, nil
}

func (s *ActivityService) Tracker(ctx context.Context, userID string) (*TrackerSnapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []*domain.DailyActivity{}
	}

	return &TrackerSnapshot{
		DailyStats:    entries,
		CurrentStreak: user.CurrentStreak,
		MaxStreak:     user.MaxStreak,
	}, nil
}

func (s *ActivityService) Heatmap(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyActivity, error) {
	return s.repo.ListByUserIDAndRange(ctx, userID, from, to)
}
