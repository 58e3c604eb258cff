package service

import (
	"context"
	"time"
)

// Cache fronts the public read endpoints. A miss is (nil, false, nil); cache
// failures must never fail the request, callers fall through to the store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
