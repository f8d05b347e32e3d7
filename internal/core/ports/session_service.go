package ports

import (
	"context"
	"time"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// Session is an issued identity token.
type Session struct {
	Token     string
	Principal string
	ExpiresAt time.Time
}

// SessionService is the identity/session provider.
type SessionService interface {
	Login(ctx context.Context, principal string) (*Session, error)
	Authenticate(token string) (domain.Identity, error)
	// Logout tears down every cached entry and wizard of the identity.
	Logout(ctx context.Context, id domain.Identity) error
	Role(ctx context.Context, id domain.Identity) (domain.UserRole, error)
	IsAdmin(ctx context.Context, id domain.Identity) (bool, error)
}
