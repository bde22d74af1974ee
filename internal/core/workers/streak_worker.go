package workers

import (
	"context"
	"log"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateStreaks(ctx context.Context, id string, current, max int) error
}

type ActivityRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.DailyActivity, error)
}

type StreakJob struct {
	UserID string
}

type StreakWorker struct {
	userRepo     UserRepository
	activityRepo ActivityRepository
	jobs         chan StreakJob

	// now is swapped in tests to pin the reference day.
	now func() time.Time
}

func NewStreakWorker(uRepo UserRepository, aRepo ActivityRepository) *StreakWorker {
	return &StreakWorker{
		userRepo:     uRepo,
		activityRepo: aRepo,
		jobs:         make(chan StreakJob, 100),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("Streak worker queue full! Dropping job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	user, err := w.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker error fetching user %s: %v", job.UserID, err)
		return
	}

	entries, err := w.activityRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker error fetching activity for %s: %v", job.UserID, err)
		return
	}

	state := domain.ComputeStreaks(entries, w.now())

	if user.CurrentStreak == state.CurrentStreak && user.MaxStreak == state.MaxStreak {
		return
	}

	if err := w.userRepo.UpdateStreaks(ctx, job.UserID, state.CurrentStreak, state.MaxStreak); err != nil {
		log.Printf("Worker failed to update streaks for %s: %v", job.UserID, err)
		return
	}

	log.Printf("Streaks updated for %s: current=%d, max=%d", user.Username, state.CurrentStreak, state.MaxStreak)
}
