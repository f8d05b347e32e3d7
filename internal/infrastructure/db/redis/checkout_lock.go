package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutLock keeps a principal from opening two checkout sessions at once.
// Key format: checkout:<principal>
type CheckoutLock struct {
	client *redis.Client
}

func NewCheckoutLock(client *redis.Client) *CheckoutLock {
	return &CheckoutLock{client: client}
}

// Acquire reports false when another checkout holds the lock.
func (l *CheckoutLock) Acquire(ctx context.Context, principal string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(principal), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("checkout lock: %w", err)
	}
	return ok, nil
}

func (l *CheckoutLock) Release(ctx context.Context, principal string) error {
	return l.client.Del(ctx, l.key(principal)).Err()
}

func (l *CheckoutLock) key(principal string) string {
	return "checkout:" + principal
}
