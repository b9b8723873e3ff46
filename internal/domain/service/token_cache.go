package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when the requested key holds no value.
var ErrCacheMiss = errors.New("cache miss")

// TokenCache stores ephemeral token material keyed by customer id and
// purpose suffix. A cache entry is a revocation checkpoint, not a
// source of truth: the signed token itself stays authoritative.
type TokenCache interface {
	// Get returns the cached value or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value with the given time-to-live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Del removes the keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error
}
