package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// ProfileState is the current-profile query as seen by the shell.
type ProfileState struct {
	State   domain.SetupState
	Fetched bool
	Profile *domain.UserProfile
	Err     error
}

type ProfileService interface {
	Current(ctx context.Context, id domain.Identity) ProfileState
	// Setup creates the first profile: zero credits, no subscription.
	Setup(ctx context.Context, id domain.Identity, name, email string) (*domain.UserProfile, error)
	// Save replaces the caller profile wholesale.
	Save(ctx context.Context, id domain.Identity, profile domain.UserProfile) error
}
