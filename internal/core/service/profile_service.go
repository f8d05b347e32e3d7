package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

type ProfileService struct {
	backend ports.BackendClient
	queries *query.Client
	logger  zerolog.Logger
}

func NewProfileService(backend ports.BackendClient, queries *query.Client, logger zerolog.Logger) *ProfileService {
	return &ProfileService{backend: backend, queries: queries, logger: logger}
}

// Current fetches the caller profile and resolves the setup state. The
// query is never retried so a missing profile is reported at once.
func (s *ProfileService) Current(ctx context.Context, id domain.Identity) ports.ProfileState {
	res := query.Fetch(ctx, s.queries, query.Caller(id, query.KeyCurrentUserProfile), func(ctx context.Context) (*domain.UserProfile, error) {
		return s.backend.GetCallerUserProfile(ctx, id)
	})
	return ports.ProfileState{
		State:   domain.ResolveSetupState(id, res.Fetched(), res.Data),
		Fetched: res.Fetched(),
		Profile: res.Data,
		Err:     res.Err,
	}
}

// Setup validates locally before any backend call, then saves a fresh
// profile with zero credits and no subscription.
func (s *ProfileService) Setup(ctx context.Context, id domain.Identity, name, email string) (*domain.UserProfile, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	profile, err := domain.NewProfile(name, email)
	if err != nil {
		return nil, err
	}

	if err := setupAllowed(s.Current(ctx, id)); err != nil {
		return nil, err
	}

	if err := s.save(ctx, id, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Str("principal", id.Principal).Msg("profile created")
	return &profile, nil
}

// setupAllowed only lets setup through once the profile fetch completed
// empty. A failed or skipped fetch says nothing about an existing profile.
func setupAllowed(st ports.ProfileState) error {
	switch {
	case st.State == domain.StateNeedsProfile:
		return nil
	case st.Err != nil:
		if errors.Is(st.Err, domain.ErrBackend) {
			return wrap("fetch profile", st.Err)
		}
		return fmt.Errorf("fetch profile: %w: %w", domain.ErrBackend, st.Err)
	case !st.Fetched:
		return domain.ErrBackendUnavailable
	default:
		return domain.ErrProfileExists
	}
}

// Save replaces the caller profile wholesale.
func (s *ProfileService) Save(ctx context.Context, id domain.Identity, profile domain.UserProfile) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	profile, err := profile.Normalize()
	if err != nil {
		return err
	}
	return s.save(ctx, id, profile)
}

func (s *ProfileService) save(ctx context.Context, id domain.Identity, profile domain.UserProfile) error {
	_, err := query.Mutate(ctx, s.queries,
		query.MutationOptions{Scope: query.CallerScope(id), Invalidates: []string{query.KeyCurrentUserProfile}},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.SaveCallerUserProfile(ctx, id, profile)
		})
	return wrap("save profile", err)
}
