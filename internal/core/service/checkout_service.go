package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

const checkoutLockTTL = 30 * time.Second

type CheckoutService struct {
	backend ports.BackendClient
	queries *query.Client
	lock    ports.CheckoutLock
	logger  zerolog.Logger
}

func NewCheckoutService(backend ports.BackendClient, queries *query.Client, lock ports.CheckoutLock, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{backend: backend, queries: queries, lock: lock, logger: logger}
}

// CreateSession opens a payment session. Only one session per principal is
// created at a time; a concurrent attempt gets ErrCheckoutInProgress.
func (s *CheckoutService) CreateSession(ctx context.Context, id domain.Identity, items []domain.ShoppingItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.Invalid("No items to check out")
	}

	ok, err := s.lock.Acquire(ctx, id.Principal, checkoutLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.CheckoutSessionsTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrCheckoutInProgress
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), id.Principal); err != nil {
			s.logger.Warn().Err(err).Str("principal", id.Principal).Msg("checkout lock release failed")
		}
	}()

	raw, err := s.backend.CreateCheckoutSession(ctx, id, items, successURL, cancelURL)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		return nil, wrap("create checkout session", err)
	}

	session, err := parseCheckoutSession(raw)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("principal", id.Principal).Msg("unusable checkout session")
		return nil, err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("principal", id.Principal).Str("session_id", session.ID).Msg("checkout session created")
	return session, nil
}

// parseCheckoutSession reads the redirect URL out of the provider's JSON
// document. A document without a string url is malformed.
func parseCheckoutSession(raw string) (*domain.CheckoutSession, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid json", domain.ErrCheckoutResponse)
	}
	url := gjson.Get(raw, "url")
	if url.Type != gjson.String || url.Str == "" {
		return nil, fmt.Errorf("%w: missing url", domain.ErrCheckoutResponse)
	}
	return &domain.CheckoutSession{ID: gjson.Get(raw, "id").String(), URL: url.Str}, nil
}

func (s *CheckoutService) SessionStatus(ctx context.Context, id domain.Identity, sessionID string) (domain.StripeSessionStatus, error) {
	if sessionID == "" {
		return nil, domain.Invalid("session_id is required")
	}
	status, err := s.backend.GetStripeSessionStatus(ctx, id, sessionID)
	return status, wrap("get session status", err)
}

func (s *CheckoutService) Configure(ctx context.Context, id domain.Identity, cfg domain.StripeConfiguration) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	if cfg.SecretKey == "" {
		return domain.Invalid("secretKey is required")
	}
	_, err := query.Mutate(ctx, s.queries,
		query.MutationOptions{Scope: query.PublicScope, Invalidates: []string{query.KeyStripeConfigured}},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.SetStripeConfiguration(ctx, id, cfg)
		})
	return wrap("set stripe configuration", err)
}
