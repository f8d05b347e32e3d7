package memory

import (
	"context"
	"sync"
	"time"
)

type CheckoutLock struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

func NewCheckoutLock() *CheckoutLock {
	return &CheckoutLock{held: make(map[string]time.Time), now: time.Now}
}

func (l *CheckoutLock) Acquire(_ context.Context, principal string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if exp, ok := l.held[principal]; ok && l.now().Before(exp) {
		return false, nil
	}
	l.held[principal] = l.now().Add(ttl)
	return true, nil
}

func (l *CheckoutLock) Release(_ context.Context, principal string) error {
	l.mu.Lock()
	delete(l.held, principal)
	l.mu.Unlock()
	return nil
}
