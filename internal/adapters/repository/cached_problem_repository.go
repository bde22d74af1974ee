package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

var _ domain.ProblemRepository = (*CachedProblemRepository)(nil)

const problemCacheTTL = 30 * time.Minute

// CachedProblemRepository caches per-user problem lists in Redis.
// The list feeds every recommendation request, so it is the hot read path.
type CachedProblemRepository struct {
	next  domain.ProblemRepository
	cache *redis.Client
}

func NewCachedProblemRepository(next domain.ProblemRepository, cache *redis.Client) *CachedProblemRepository {
	return &CachedProblemRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedProblemRepository) cacheKey(userID string) string {
	return fmt.Sprintf("problems:%s", userID)
}

func (r *CachedProblemRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
	}
}

func (r *CachedProblemRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var problems []*domain.Problem
		if err := json.Unmarshal([]byte(val), &problems); err == nil {
			return problems, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	problems, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(problems); err == nil {
		if setErr := r.cache.Set(ctx, key, data, problemCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return problems, nil
}

func (r *CachedProblemRepository) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedProblemRepository) Create(ctx context.Context, p *domain.Problem) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx, p.UserID)
	return nil
}

func (r *CachedProblemRepository) Update(ctx context.Context, p *domain.Problem) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx, p.UserID)
	return nil
}
