package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

// SessionService issues and verifies identity tokens. The identity
// provider itself is external; the principal is taken as asserted.
type SessionService struct {
	backend  ports.BackendClient
	queries  *query.Client
	wizards  ports.WizardRepository
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewSessionService(backend ports.BackendClient, queries *query.Client, wizards ports.WizardRepository, secret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		backend:  backend,
		queries:  queries,
		wizards:  wizards,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Login registers the principal with the backend access control and
// returns a signed session token.
func (s *SessionService) Login(ctx context.Context, principal string) (*ports.Session, error) {
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return nil, domain.Invalid("principal is required")
	}
	id := domain.Identity{Principal: principal}

	if err := s.backend.InitializeAccessControl(ctx, id); err != nil {
		return nil, wrap("initialize access control", err)
	}
	s.queries.Invalidate(ctx, query.CallerScope(id), query.KeyCallerRole)

	now := s.now()
	exp := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   principal,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	s.logger.Info().Str("principal", principal).Msg("session started")
	return &ports.Session{Token: token, Principal: principal, ExpiresAt: exp}, nil
}

func (s *SessionService) Authenticate(token string) (domain.Identity, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrNotAuthenticated, err)
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no subject", domain.ErrNotAuthenticated)
	}
	return domain.Identity{Principal: claims.Subject}, nil
}

// Logout drops everything cached for the identity, wizards included.
func (s *SessionService) Logout(ctx context.Context, id domain.Identity) error {
	if !id.Authenticated() {
		return nil
	}
	clearErr := s.queries.Clear(ctx, query.CallerScope(id))
	wizErr := s.wizards.Delete(ctx, id.Principal, domain.WizardApp, domain.WizardBlog)
	if err := errors.Join(clearErr, wizErr); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info().Str("principal", id.Principal).Msg("session ended")
	return nil
}

// Role is the cached role used for rendering; RequireAdmin does not rely on it.
func (s *SessionService) Role(ctx context.Context, id domain.Identity) (domain.UserRole, error) {
	if !id.Authenticated() {
		return domain.RoleGuest, nil
	}
	res := query.Fetch(ctx, s.queries, query.Caller(id, query.KeyCallerRole), func(ctx context.Context) (domain.UserRole, error) {
		return s.backend.GetCallerUserRole(ctx, id)
	})
	return callerResult(id, res)
}

// IsAdmin asks the backend directly so authorization never reads a stale role.
func (s *SessionService) IsAdmin(ctx context.Context, id domain.Identity) (bool, error) {
	if !id.Authenticated() {
		return false, nil
	}
	ok, err := s.backend.IsCallerAdmin(ctx, id)
	return ok, wrap("is caller admin", err)
}
