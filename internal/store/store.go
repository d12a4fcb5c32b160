// Package store is the key-value adapter the engine persists into. Each
// logical collection lives under one namespaced key as a JSON array.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is the minimal key-value surface every backend implements.
//
// Writers do a full read-modify-write of a collection key; there is no
// cross-key transaction and no merge, so concurrent writers to the same key
// lose updates (last writer wins).
type KV interface {
	// Get returns the raw value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
