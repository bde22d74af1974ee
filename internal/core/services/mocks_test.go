package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

// Hand-rolled map-backed fakes shared by the service tests.

type MockUserRepo struct {
	store         map[string]*domain.User
	byEmail       map[string]*domain.User
	stats         map[string]*domain.PlatformHandles
	simulateError error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{
		store:   make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		stats:   make(map[string]*domain.PlatformHandles),
	}
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	clone := *user
	m.store[user.ID] = &clone
	m.byEmail[user.Email] = &clone
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MockUserRepo) UpdateHandles(ctx context.Context, id, leetcode, codeforces string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	u, ok := m.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LeetCodeHandle = leetcode
	u.CodeforcesHandle = codeforces
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockUserRepo) UpdatePlatformStats(ctx context.Context, id string, handles *domain.PlatformHandles) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrUserNotFound
	}
	m.stats[id] = handles
	return nil
}

func (m *MockUserRepo) UpdateStreaks(ctx context.Context, id string, current, max int) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	u, ok := m.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.CurrentStreak = current
	u.MaxStreak = max
	return nil
}

type MockProblemRepo struct {
	store         map[string]*domain.Problem
	order         []string
	simulateError error
}

func NewMockProblemRepo() *MockProblemRepo {
	return &MockProblemRepo{
		store: make(map[string]*domain.Problem),
	}
}

func (m *MockProblemRepo) Create(ctx context.Context, p *domain.Problem) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	clone := *p
	m.store[p.ID] = &clone
	m.order = append(m.order, p.ID)
	return nil
}

func (m *MockProblemRepo) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	p, ok := m.store[id]
	if !ok {
		return nil, domain.ErrProblemNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *MockProblemRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.Problem
	for _, id := range m.order {
		p := m.store[id]
		if p.UserID == userID {
			clone := *p
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (m *MockProblemRepo) Update(ctx context.Context, p *domain.Problem) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[p.ID]; !ok {
		return domain.ErrProblemNotFound
	}
	clone := *p
	m.store[p.ID] = &clone
	return nil
}

type MockActivityRepo struct {
	entries       map[string]*domain.DailyActivity
	simulateError error
}

func NewMockActivityRepo() *MockActivityRepo {
	return &MockActivityRepo{
		entries: make(map[string]*domain.DailyActivity),
	}
}

func (m *MockActivityRepo) AddSolves(ctx context.Context, userID, date string, count int) (*domain.DailyActivity, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	key := userID + "|" + date
	if e, ok := m.entries[key]; ok {
		e.Solved += count
		e.UpdatedAt = time.Now().UTC()
		clone := *e
		return &clone, nil
	}
	entry, err := domain.NewDailyActivity(userID, date, count)
	if err != nil {
		return nil, err
	}
	m.entries[key] = entry
	clone := *entry
	return &clone, nil
}

func (m *MockActivityRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyActivity, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.DailyActivity
	for _, e := range m.entries {
		if e.UserID == userID {
			clone := *e
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list, nil
}

func (m *MockActivityRepo) ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyActivity, error) {
	all, err := m.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
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
