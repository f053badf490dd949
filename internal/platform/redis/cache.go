// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// JSONCache stores values as JSON strings under a common key prefix.
type JSONCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewJSONCache creates a cache whose entries expire after ttl.
func NewJSONCache(client redis.UniversalClient, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache) key(key string) string {
	return c.prefix + key
}

// Get decodes the cached value into dest. A miss returns (false, nil).
func (c *JSONCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: get %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// A payload we cannot read is as good as a miss.
		_ = c.client.Del(ctx, c.key(key)).Err()
		return false, nil
	}

	return true, nil
}

// Set stores value under key with the cache TTL.
func (c *JSONCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}

	return nil
}

// Delete evicts key. Deleting a missing key is not an error.
func (c *JSONCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis: delete %s: %w", key, err)
	}
	return nil
}
