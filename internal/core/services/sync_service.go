package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

type LeetCodeClient interface {
	FetchStats(ctx context.Context, username string) (*domain.LeetCodeStats, error)
}

type CodeforcesClient interface {
	FetchStats(ctx context.Context, handle string) (*domain.CodeforcesStats, error)
}

type SyncService struct {
	userRepo   domain.UserRepository
	leetcode   LeetCodeClient
	codeforces CodeforcesClient
}

func NewSyncService(userRepo domain.UserRepository, lc LeetCodeClient, cf CodeforcesClient) *SyncService {
	return &SyncService{
		userRepo:   userRepo,
		leetcode:   lc,
		codeforces: cf,
	}
}

// FetchStats pulls live stats for every handle the user has configured.
// A platform without a handle is simply absent from the result.
func (s *SyncService) FetchStats(ctx context.Context, user *domain.User) (*domain.PlatformHandles, error) {
	handles := &domain.PlatformHandles{}

	if user.LeetCodeHandle != "" {
		lc, err := s.leetcode.FetchStats(ctx, user.LeetCodeHandle)
		if err != nil {
			return nil, fmt.Errorf("sync service: leetcode fetch failed: %w", err)
		}
		handles.LeetCode = lc
	}

	if user.CodeforcesHandle != "" {
		cf, err := s.codeforces.FetchStats(ctx, user.CodeforcesHandle)
		if err != nil {
			return nil, fmt.Errorf("sync service: codeforces fetch failed: %w", err)
		}
		handles.Codeforces = cf
	}

	return handles, nil
}

// SyncAll fetches both platforms and persists the snapshot with a sync timestamp.
func (s *SyncService) SyncAll(ctx context.Context, userID string) (*domain.PlatformHandles, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	handles, err := s.FetchStats(ctx, user)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	handles.LastSynced = &now

	if err := s.userRepo.UpdatePlatformStats(ctx, userID, handles); err != nil {
		return nil, fmt.Errorf("sync service: failed to persist stats: %w", err)
	}

	return handles, nil
}

// LiveStats fetches both platforms without writing anything.
func (s *SyncService) LiveStats(ctx context.Context, userID string) (*domain.PlatformHandles, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.FetchStats(ctx, user)
}

// Handles returns the user's configured platform handles.
func (s *SyncService) Handles(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *SyncService) UpdateHandles(ctx context.Context, userID, leetcode, codeforces string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.SetHandles(leetcode, codeforces)

	if err := s.userRepo.UpdateHandles(ctx, userID, user.LeetCodeHandle, user.CodeforcesHandle); err != nil {
		return nil, err
	}

	return user, nil
}
