package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"partsHub/domain"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no trending feed is cached under a key.
var ErrCacheMiss = errors.New("trending feed not cached")

type TrendingCacheRepository struct {
	client *redis.Client
}

func NewTrendingCacheRepository(client *redis.Client) *TrendingCacheRepository {
	return &TrendingCacheRepository{
		client: client,
	}
}

func (r *TrendingCacheRepository) Get(ctx context.Context, key string) ([]domain.RankedProduct, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get trending feed from Redis: %w", err)
	}

	var ranked []domain.RankedProduct
	if err := json.Unmarshal([]byte(val), &ranked); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trending feed: %w", err)
	}

	return ranked, nil
}

func (r *TrendingCacheRepository) Set(ctx context.Context, key string, ranked []domain.RankedProduct, ttl time.Duration) error {
	jsonData, err := json.Marshal(ranked)
	if err != nil {
		return fmt.Errorf("failed to marshal trending feed: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store trending feed in Redis: %w", err)
	}

	return nil
}
