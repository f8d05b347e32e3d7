package ports

import (
	"context"
	"time"
)

// CheckoutLock prevents a principal from opening two checkout sessions at once.
type CheckoutLock interface {
	// Acquire reports false when a lock for principal is already held.
	Acquire(ctx context.Context, principal string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, principal string) error
}
