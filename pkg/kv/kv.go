// Package kv provides the key-value store used for token revocation.
// Backends (Valkey/Redis, in-memory) are interchangeable behind Store.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for missing or expired keys.
var ErrNotFound = errors.New("kv: key not found")

// Store defines a minimal key-value interface. Keys are strings, values are
// byte slices. A zero TTL means the key never expires.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns ErrNotFound if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	Exists(ctx context.Context, key string) (bool, error)

	// Delete returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	Close() error
}
