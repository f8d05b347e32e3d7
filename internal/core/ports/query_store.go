package ports

import (
	"context"
	"time"
)

// QueryStore persists cached query values as JSON under string keys.
type QueryStore interface {
	// Get decodes the value stored at key into dst. found is false on a miss.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
