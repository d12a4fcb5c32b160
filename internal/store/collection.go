package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/dailylearn/internal/logger"
)

// Collection is a typed view over one JSON-array key.
type Collection[T any] struct {
	kv  KV
	key string
	log *logger.Logger
}

// NewCollection binds a typed collection to key.
func NewCollection[T any](kv KV, key string, log *logger.Logger) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, log: logger.OrNop(log)}
}

// Key returns the backing key.
func (c *Collection[T]) Key() string { return c.key }

// All returns every item under the key. A missing key, backend error or
// corrupt payload all yield an empty slice; the latter two are logged.
func (c *Collection[T]) All(ctx context.Context) []T {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn("store read failed, using empty collection", "key", c.key, "error", err)
		}
		return []T{}
	}
	if len(raw) == 0 {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("corrupt collection, using empty collection", "key", c.key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Append reads the collection, appends items and writes it back.
func (c *Collection[T]) Append(ctx context.Context, items ...T) error {
	all := c.All(ctx)
	all = append(all, items...)
	return c.Replace(ctx, all)
}

// Filter returns the items for which keep reports true.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) []T {
	var out []T
	for _, item := range c.All(ctx) {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
