package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Ranked menus are cached per customer and context. New customers share one
// slot per context under the "new" key segment; they all rank identically
// since the model falls back to the sentinel user code.
func buildKey(customerID int64, rctx domain.Context) string {
	cust := "new"
	if customerID > 0 {
		cust = fmt.Sprintf("%d", customerID)
	}
	return fmt.Sprintf("rec:cust:%s:%s:%s:%s", cust, rctx.Weather, rctx.GroupSize, rctx.TimeOfDay)
}

// Get returns the cached ranked menu for a customer and context.
func (c *Cache) Get(ctx context.Context, customerID int64, rctx domain.Context) (domain.RankedMenu, bool, error) {
	var menu domain.RankedMenu

	key := buildKey(customerID, rctx)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return menu, false, nil
	}
	if err != nil {
		return menu, false, fmt.Errorf("failed to get ranked menu from cache: %w", err)
	}

	if err := json.Unmarshal([]byte(val), &menu); err != nil {
		return menu, false, fmt.Errorf("failed to unmarshal ranked menu %s: %w", key, err)
	}
	return menu, true, nil
}

// Set stores a ranked menu for a customer and context.
func (c *Cache) Set(ctx context.Context, customerID int64, rctx domain.Context, menu domain.RankedMenu) error {
	key := buildKey(customerID, rctx)
	val, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("failed to marshal ranked menu: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set ranked menu in cache: %w", err)
	}
	return nil
}

// ClearCustomerCache drops every cached menu for one customer: used after
// checkout, when their order history has changed.
func (c *Cache) ClearCustomerCache(ctx context.Context, customerID int64) error {
	pattern := fmt.Sprintf("rec:cust:%d:*", customerID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
