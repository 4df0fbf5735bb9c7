package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/DoaaAltair/Elite-Home/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "apartments:list"

// ListingCache caches the full apartment list in Redis.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListingCache returns a new ListingCache.
func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *ListingCache) GetList(ctx context.Context) ([]dom.Apartment, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Apartment
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *ListingCache) SetList(ctx context.Context, list []dom.Apartment) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate drops the cached list. Called after every write.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
