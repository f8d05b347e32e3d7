// Package memory provides process-local stores used when Redis or MongoDB
// are not configured.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type item struct {
	value     []byte
	expiresAt time.Time
}

// QueryStore mirrors the Redis store: JSON values with an optional TTL.
type QueryStore struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

func NewQueryStore() *QueryStore {
	return &QueryStore{items: make(map[string]item), now: time.Now}
}

func (s *QueryStore) Get(_ context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || (!it.expiresAt.IsZero() && !s.now().Before(it.expiresAt)) {
		return false, nil
	}
	if err := json.Unmarshal(it.value, dst); err != nil {
		return false, fmt.Errorf("query store decode %s: %w", key, err)
	}
	return true, nil
}

func (s *QueryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("query store encode %s: %w", key, err)
	}
	it := item{value: b}
	if ttl > 0 {
		it.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
	return nil
}

func (s *QueryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.items, k)
	}
	return nil
}

func (s *QueryStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.items {
		if strings.HasPrefix(k, prefix) {
			delete(s.items, k)
		}
	}
	return nil
}

// Len reports the number of stored keys, expired ones included.
func (s *QueryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
