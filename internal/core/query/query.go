// Package query is the server-side data-fetching layer: a keyed cache in
// front of the backend client with request collapsing, retries and
// explicit invalidation after mutations.
package query

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

// PublicScope holds data that does not depend on the caller.
const PublicScope = "public"

// Cache keys.
const (
	KeyApps                  = "apps"
	KeyFounderProfile        = "founderProfile"
	KeyStripeConfigured      = "stripeConfigured"
	KeyImplementationLibrary = "implementationLibrary"
	KeyCurrentUserProfile    = "currentUserProfile"
	KeyLastStressTestResults = "lastStressTestResults"
	KeyStressTestHistory     = "stressTestHistory"
	KeyGeneratedContent      = "generatedContent"
	KeyCallerRole            = "callerRole"
)

const (
	DefaultRetry   = 3
	defaultBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// ErrDisabled is returned by Result.Unwrap when the query never ran.
var ErrDisabled = errors.New("query disabled")

type Status string

const (
	StatusDisabled Status = "disabled"
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
)

// Options describes one cached query.
type Options struct {
	Scope   string
	Key     string
	Enabled bool
	// Retry is the number of extra attempts after a failure.
	Retry int
	// StaleTime bounds how long a cached value is served; zero keeps it
	// until it is invalidated or expires from the store.
	StaleTime time.Duration
}

// Public returns the options of a caller-independent query.
func Public(key string) Options {
	return Options{Scope: PublicScope, Key: key, Enabled: true, Retry: DefaultRetry}
}

// CallerScope is the cache scope of one identity. The principal is escaped
// so no caller scope equals PublicScope or prefixes another caller's.
func CallerScope(id domain.Identity) string {
	return "user:" + url.QueryEscape(id.Principal)
}

// Caller returns the options of a query scoped to the identity. It is
// disabled for anonymous callers and never retried.
func Caller(id domain.Identity, key string) Options {
	return Options{Scope: CallerScope(id), Key: key, Enabled: id.Authenticated()}
}

// Result is the outcome of a fetch as the view sees it.
type Result[T any] struct {
	Status    Status
	Data      T
	Err       error
	FetchedAt time.Time
	FromCache bool
}

func (r Result[T]) Fetched() bool { return r.Status == StatusSuccess }

func (r Result[T]) Unwrap() (T, error) {
	switch r.Status {
	case StatusSuccess:
		return r.Data, nil
	case StatusError:
		return r.Data, r.Err
	default:
		return r.Data, ErrDisabled
	}
}

// MutationOptions lists the keys a successful mutation invalidates.
type MutationOptions struct {
	Scope       string
	Invalidates []string
}

type entry[T any] struct {
	Value     T         `json:"value"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Readiness reports whether the backend can be called.
type Readiness interface {
	Ready() bool
}

type Client struct {
	store   ports.QueryStore
	backend Readiness
	ttl     time.Duration
	backoff time.Duration
	group   singleflight.Group
	log     zerolog.Logger
	now     func() time.Time

	mu   sync.Mutex
	gens map[string]uint64
}

func NewClient(store ports.QueryStore, backend Readiness, ttl time.Duration, log zerolog.Logger) *Client {
	return &Client{
		store:   store,
		backend: backend,
		ttl:     ttl,
		backoff: defaultBackoff,
		log:     log,
		now:     time.Now,
		gens:    make(map[string]uint64),
	}
}

// WithBackoff sets the base delay between retries.
func (c *Client) WithBackoff(d time.Duration) *Client {
	c.backoff = d
	return c
}

func storeKey(scope, key string) string {
	return "query:" + scope + ":" + key
}

func scopePrefix(scope string) string {
	return "query:" + scope + ":"
}

// generation changes every time a key is invalidated so a fetch that was
// in flight during the invalidation does not repopulate the cache.
func (c *Client) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.gens[key]
	if !ok {
		c.gens[key] = 0
	}
	return g
}

func (c *Client) bump(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.gens[k]++
	}
}

func (c *Client) bumpPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.gens {
		if strings.HasPrefix(k, prefix) {
			c.gens[k]++
		}
	}
}

// Fetch serves the query from the cache or runs fn, collapsing concurrent
// callers of the same key into one backend call.
func Fetch[T any](ctx context.Context, c *Client, opts Options, fn func(context.Context) (T, error)) Result[T] {
	if !opts.Enabled || !c.backend.Ready() {
		return Result[T]{Status: StatusDisabled}
	}

	key := storeKey(opts.Scope, opts.Key)

	var cached entry[T]
	found, err := c.store.Get(ctx, key, &cached)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("query cache read failed")
	}
	if found && (opts.StaleTime == 0 || c.now().Sub(cached.FetchedAt) < opts.StaleTime) {
		metrics.QueryCacheTotal.WithLabelValues(opts.Key, "hit").Inc()
		return Result[T]{Status: StatusSuccess, Data: cached.Value, FetchedAt: cached.FetchedAt, FromCache: true}
	}

	metrics.QueryCacheTotal.WithLabelValues(opts.Key, "miss").Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		gen := c.generation(key)

		value, err := retry(ctx, c.backoff, opts.Retry, fn)
		if err != nil {
			return nil, err
		}

		e := entry[T]{Value: value, FetchedAt: c.now()}
		if c.generation(key) == gen {
			if err := c.store.Set(ctx, key, e, c.ttl); err != nil {
				c.log.Warn().Err(err).Str("key", key).Msg("query cache write failed")
			}
		}
		return e, nil
	})
	if err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("query failed")
		return Result[T]{Status: StatusError, Err: err}
	}

	e := v.(entry[T])
	return Result[T]{Status: StatusSuccess, Data: e.Value, FetchedAt: e.FetchedAt}
}

func retry[T any](ctx context.Context, base time.Duration, retries int, fn func(context.Context) (T, error)) (T, error) {
	var (
		value T
		err   error
	)
	delay := base
	for attempt := 0; ; attempt++ {
		value, err = fn(ctx)
		if err == nil || attempt >= retries || ctx.Err() != nil {
			return value, err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return value, fmt.Errorf("%w: %w", err, ctx.Err())
		case <-t.C:
		}
		delay = min(delay*2, maxBackoff)
	}
}

// Mutate runs fn once and, only when it succeeds, invalidates the listed keys.
func Mutate[T any](ctx context.Context, c *Client, opts MutationOptions, fn func(context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	c.Invalidate(ctx, opts.Scope, opts.Invalidates...)
	return v, nil
}

// Invalidate drops the keys of a scope so the next Fetch refetches them.
func (c *Client) Invalidate(ctx context.Context, scope string, keys ...string) {
	if len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = storeKey(scope, k)
		c.group.Forget(full[i])
	}
	c.bump(full...)
	if err := c.store.Delete(ctx, full...); err != nil {
		c.log.Warn().Err(err).Strs("keys", full).Msg("query invalidation failed")
	}
}

// Clear drops every entry of the scope.
func (c *Client) Clear(ctx context.Context, scope string) error {
	prefix := scopePrefix(scope)
	c.bumpPrefix(prefix)
	if err := c.store.DeletePrefix(ctx, prefix); err != nil {
		return fmt.Errorf("query: clear scope %s: %w", scope, err)
	}
	return nil
}
