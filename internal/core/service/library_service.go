package service

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

type LibraryService struct {
	backend ports.BackendClient
	queries *query.Client
	logger  zerolog.Logger
}

func NewLibraryService(backend ports.BackendClient, queries *query.Client, logger zerolog.Logger) *LibraryService {
	return &LibraryService{backend: backend, queries: queries, logger: logger}
}

// Library returns the current goals in order. An empty future list is
// replaced by placeholders flagged as coming soon.
func (s *LibraryService) Library(ctx context.Context, id domain.Identity) (*ports.LibraryView, error) {
	res := query.Fetch(ctx, s.queries, query.Public(query.KeyImplementationLibrary), func(ctx context.Context) (domain.ImplementationLibrary, error) {
		return s.backend.GetImplementationLibrary(ctx, id)
	})
	lib, err := publicResult(res)
	if err != nil {
		return nil, wrap("get implementation library", err)
	}

	v := &ports.LibraryView{Goals: lib.Goals, FutureGoals: lib.FutureGoals}
	if v.Goals == nil {
		v.Goals = []domain.ImplementationGoal{}
	}
	if len(v.FutureGoals) == 0 {
		v.FutureGoals = slices.Clone(domain.FuturePlaceholders)
		v.ComingSoon = true
	}
	return v, nil
}

func (s *LibraryService) Defaults(ctx context.Context, id domain.Identity) ([]domain.ImplementationGoal, error) {
	goals, err := s.backend.GetDefaultImplementationGoals(ctx, id)
	return goals, wrap("get default implementation goals", err)
}

func (s *LibraryService) AddGoal(ctx context.Context, id domain.Identity, goal domain.ImplementationGoal) error {
	return s.mutate(ctx, id, goal, s.backend.AddImplementationGoal)
}

func (s *LibraryService) AddFutureGoal(ctx context.Context, id domain.Identity, goal domain.ImplementationGoal) error {
	return s.mutate(ctx, id, goal, s.backend.AddFutureImplementationGoal)
}

func (s *LibraryService) RemoveGoal(ctx context.Context, id domain.Identity, goalName string) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	if strings.TrimSpace(goalName) == "" {
		return domain.Invalid("goalName is required")
	}
	_, err := query.Mutate(ctx, s.queries, libraryMutation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.backend.RemoveImplementationGoal(ctx, id, goalName)
	})
	return wrap("remove implementation goal", err)
}

var libraryMutation = query.MutationOptions{
	Scope:       query.PublicScope,
	Invalidates: []string{query.KeyImplementationLibrary},
}

func (s *LibraryService) mutate(
	ctx context.Context,
	id domain.Identity,
	goal domain.ImplementationGoal,
	call func(context.Context, domain.Identity, domain.ImplementationGoal) error,
) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	if strings.TrimSpace(goal.GoalName) == "" || strings.TrimSpace(goal.UseCase) == "" || strings.TrimSpace(goal.Example) == "" {
		return domain.Invalid("Please fill in all fields")
	}
	_, err := query.Mutate(ctx, s.queries, libraryMutation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx, id, goal)
	})
	if err != nil {
		return wrap("add implementation goal", err)
	}
	s.logger.Info().Str("principal", id.Principal).Str("goal", goal.GoalName).Msg("implementation library updated")
	return nil
}
