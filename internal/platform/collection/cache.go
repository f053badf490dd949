// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arokeji/library-api/internal/platform/ctxutil"
)

// Cache is the key-value contract [CachedStore] needs. It is satisfied by
// the Redis JSONCache.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// CachedStore decorates a [Store] with a read-through cache for FindByID.
//
// Writes go to the store first and then evict the entry. Cache failures are
// logged and never fail the request; the store stays the source of truth.
type CachedStore[T any, ID comparable] struct {
	Store[T, ID]

	cache     Cache
	namespace string
}

// NewCachedStore wraps store. namespace separates resources sharing a cache.
func NewCachedStore[T any, ID comparable](store Store[T, ID], cache Cache, namespace string) *CachedStore[T, ID] {
	return &CachedStore[T, ID]{Store: store, cache: cache, namespace: namespace}
}

func (c *CachedStore[T, ID]) key(id ID) string {
	return fmt.Sprintf("%s:%v", c.namespace, id)
}

// FindByID serves from the cache and fills it on a miss.
func (c *CachedStore[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	var cached T
	found, err := c.cache.Get(ctx, c.key(id), &cached)
	if err != nil {
		c.warn(ctx, "cache_read_failed", id, err)
	}
	if found {
		return &cached, nil
	}

	item, err := c.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, c.key(id), item); err != nil {
		c.warn(ctx, "cache_write_failed", id, err)
	}
	return item, nil
}

// UpdateByID writes through and evicts.
func (c *CachedStore[T, ID]) UpdateByID(ctx context.Context, id ID, item *T) (*T, error) {
	updated, err := c.Store.UpdateByID(ctx, id, item)
	c.evict(ctx, id)
	return updated, err
}

// DeleteByID deletes and evicts.
func (c *CachedStore[T, ID]) DeleteByID(ctx context.Context, id ID) (*T, error) {
	deleted, err := c.Store.DeleteByID(ctx, id)
	c.evict(ctx, id)
	return deleted, err
}

// Evict drops id from the cache. Stores whose rows change as a side effect
// of another resource (books losing their author) call it directly.
func (c *CachedStore[T, ID]) Evict(ctx context.Context, id ID) {
	c.evict(ctx, id)
}

func (c *CachedStore[T, ID]) evict(ctx context.Context, id ID) {
	if err := c.cache.Delete(ctx, c.key(id)); err != nil {
		c.warn(ctx, "cache_evict_failed", id, err)
	}
}

func (c *CachedStore[T, ID]) warn(ctx context.Context, event string, id ID, err error) {
	ctxutil.GetLogger(ctx).WarnContext(ctx, event,
		slog.String("key", c.key(id)),
		slog.Any("error", err),
	)
}
