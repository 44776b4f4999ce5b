// Package redis caches synthesized search pages. The cache is an optional
// accelerator: bookmarks and history never touch Redis, and any cache failure
// degrades to regenerating the page.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edusearch/edusearch/internal/search"
)

// DefaultPageTTL bounds how long a cached page is served before it is
// regenerated.
const DefaultPageTTL = 15 * time.Minute

// Cache stores search pages in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a cache over an established client. A ttl of zero means
// DefaultPageTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// GetPage returns the cached page for the key, or nil on a miss.
func (c *Cache) GetPage(ctx context.Context, key string) (*search.Response, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}

	var page search.Response
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached page: %w", err)
	}
	return &page, nil
}

// SetPage stores a page under the key with the cache TTL.
func (c *Cache) SetPage(ctx context.Context, key string, page *search.Response) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}
