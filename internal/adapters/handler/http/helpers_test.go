package http_test

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http/middleware"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

// Map-backed fakes and a test-only auth shim shared by the handler tests.
// The shim reads X-User-ID so handlers can be exercised without real tokens.

func userIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	}
}

type fakeUserRepo struct {
	store   map[string]*domain.User
	byEmail map[string]*domain.User
	stats   map[string]*domain.PlatformHandles
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		store:   make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		stats:   make(map[string]*domain.PlatformHandles),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	clone := *user
	f.store[user.ID] = &clone
	f.byEmail[user.Email] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) UpdateHandles(ctx context.Context, id, leetcode, codeforces string) error {
	u, ok := f.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LeetCodeHandle = leetcode
	u.CodeforcesHandle = codeforces
	return nil
}

func (f *fakeUserRepo) UpdatePlatformStats(ctx context.Context, id string, handles *domain.PlatformHandles) error {
	if _, ok := f.store[id]; !ok {
		return domain.ErrUserNotFound
	}
	f.stats[id] = handles
	return nil
}

func (f *fakeUserRepo) UpdateStreaks(ctx context.Context, id string, current, max int) error {
	u, ok := f.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.CurrentStreak = current
	u.MaxStreak = max
	return nil
}

type fakeProblemRepo struct {
	store map[string]*domain.Problem
	order []string
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{store: make(map[string]*domain.Problem)}
}

func (f *fakeProblemRepo) Create(ctx context.Context, p *domain.Problem) error {
	clone := *p
	f.store[p.ID] = &clone
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProblemRepo) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, domain.ErrProblemNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProblemRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	var list []*domain.Problem
	for _, id := range f.order {
		p := f.store[id]
		if p.UserID == userID {
			clone := *p
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (f *fakeProblemRepo) Update(ctx context.Context, p *domain.Problem) error {
	if _, ok := f.store[p.ID]; !ok {
		return domain.ErrProblemNotFound
	}
	clone := *p
	f.store[p.ID] = &clone
	return nil
}

type fakeActivityRepo struct {
	entries map[string]*domain.DailyActivity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{entries: make(map[string]*domain.DailyActivity)}
}

func (f *fakeActivityRepo) AddSolves(ctx context.Context, userID, date string, count int) (*domain.DailyActivity, error) {
	key := userID + "|" + date
	if e, ok := f.entries[key]; ok {
		e.Solved += count
		clone := *e
		return &clone, nil
	}
	entry, err := domain.NewDailyActivity(userID, date, count)
	if err != nil {
		return nil, err
	}
	f.entries[key] = entry
	clone := *entry
	return &clone, nil
}

func (f *fakeActivityRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyActivity, error) {
	var list []*domain.DailyActivity
	for _, e := range f.entries {
		if e.UserID == userID {
			clone := *e
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list, nil
}

func (f *fakeActivityRepo) ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyActivity, error) {
	all, _ := f.ListByUserID(ctx, userID)
	fromKey := from.Format(domain.DateLayout)
	toKey := to.Format(domain.DateLayout)
	var list []*domain.DailyActivity
	for _, e := range all {
		if e.Date >= fromKey && e.Date <= toKey {
			list = append(list, e)
		}
	}
	return list, nil
}
