package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

type CheckoutService interface {
	// CreateSession asks the backend for a session and parses its redirect URL.
	CreateSession(ctx context.Context, id domain.Identity, items []domain.ShoppingItem, successURL, cancelURL string) (*domain.CheckoutSession, error)
	SessionStatus(ctx context.Context, id domain.Identity, sessionID string) (domain.StripeSessionStatus, error)
	Configure(ctx context.Context, id domain.Identity, cfg domain.StripeConfiguration) error
}
