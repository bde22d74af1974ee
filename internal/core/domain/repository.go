package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by its (lowercased) email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateHandles stores the platform usernames for a user.
	UpdateHandles(ctx context.Context, id, leetcode, codeforces string) error

	// UpdatePlatformStats stores the synced platform snapshot.
	UpdatePlatformStats(ctx context.Context, id string, handles *PlatformHandles) error

	// UpdateStreaks persists recomputed streak counters.
	UpdateStreaks(ctx context.Context, id string, current, max int) error
}

type ProblemRepository interface {
	Create(ctx context.Context, problem *Problem) error
	GetByID(ctx context.Context, id string) (*Problem, error)

	// ListByUserID returns the user's problems in insertion order.
	// Selection rules in the recommender depend on that order.
	ListByUserID(ctx context.Context, userID string) ([]*Problem, error)

	Update(ctx context.Context, problem *Problem) error
}

type ActivityRepository interface {
	// AddSolves increments the solved counter for one user-day,
	// creating the entry when absent.
	AddSolves(ctx context.Context, userID, date string, count int) (*DailyActivity, error)

	// ListByUserID returns the user's full activity log, unordered.
	ListByUserID(ctx context.Context, userID string) ([]*DailyActivity, error)

	// ListByUserIDAndRange returns entries whose date falls inside [from, to].
	ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*DailyActivity, error)
}
