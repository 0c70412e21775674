package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a redis client from a URL such as
// redis://localhost:6379/0 and verifies the connection with a ping.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	return rdb
}

// Close closes the client, logging instead of failing on error.
func Close(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("failed to close Redis client: %v", err)
	}
}
