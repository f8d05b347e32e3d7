package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// LibraryView is the implementation library page data.
type LibraryView struct {
	Goals       []domain.ImplementationGoal `json:"goals"`
	FutureGoals []domain.ImplementationGoal `json:"futureGoals"`
	// ComingSoon is set when FutureGoals are placeholders.
	ComingSoon bool `json:"comingSoon"`
}

type LibraryService interface {
	Library(ctx context.Context, id domain.Identity) (*LibraryView, error)
	Defaults(ctx context.Context, id domain.Identity) ([]domain.ImplementationGoal, error)
	AddGoal(ctx context.Context, id domain.Identity, goal domain.ImplementationGoal) error
	AddFutureGoal(ctx context.Context, id domain.Identity, goal domain.ImplementationGoal) error
	RemoveGoal(ctx context.Context, id domain.Identity, goalName string) error
}
