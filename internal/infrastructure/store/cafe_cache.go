package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

const cafeListKey = "cafes:list"

// CafeCacheStore caches the cafe directory listing in Redis. The directory
// is read on every student dashboard load and changes rarely, so a short
// TTL plus invalidation on mutation keeps it fresh.
type CafeCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewCafeCacheStore(rdb *redis.Client) *CafeCacheStore {
	return &CafeCacheStore{
		rdb:     rdb,
		listTTL: 5 * time.Minute,
	}
}

var _ contract.ICafeCache = (*CafeCacheStore)(nil)

func (c *CafeCacheStore) GetCafeList(ctx context.Context) ([]entity.Cafe, bool, error) {
	b, err := c.rdb.Get(ctx, cafeListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cafes []entity.Cafe
	if err := json.Unmarshal(b, &cafes); err != nil {
		// Treat a corrupt entry as a miss; it gets overwritten.
		return nil, false, nil
	}
	return cafes, true, nil
}

func (c *CafeCacheStore) SetCafeList(ctx context.Context, cafes []entity.Cafe) error {
	data, err := json.Marshal(cafes)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cafeListKey, data, c.listTTL).Err()
}

func (c *CafeCacheStore) InvalidateCafeList(ctx context.Context) error {
	return c.rdb.Del(ctx, cafeListKey).Err()
}
