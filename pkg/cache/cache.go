package cache

import (
	"context"
	"time"
)

// Cache is the contract repositories use for read-through caching. It allows
// swapping the implementation (Redis, in-memory, disabled).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

type noop struct{}

// Noop returns a Cache where every read misses and every write succeeds.
// Used when no Redis host is configured.
func Noop() Cache { return noop{} }

func (noop) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noop) Delete(context.Context, ...string) error                       { return nil }
func (noop) Ping(context.Context) error                                    { return nil }
