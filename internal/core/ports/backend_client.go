package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// BackendClient is the typed boundary to the backend actor. Every call runs as
// the caller identity; no call retries or applies its own timeout.
// Methods returning a pointer return nil for "not yet created".
type BackendClient interface {
	Ready() bool

	InitializeAccessControl(ctx context.Context, caller domain.Identity) error
	GetCallerUserRole(ctx context.Context, caller domain.Identity) (domain.UserRole, error)
	IsCallerAdmin(ctx context.Context, caller domain.Identity) (bool, error)
	AssignCallerUserRole(ctx context.Context, caller domain.Identity, principal string, role domain.UserRole) error

	GetCallerUserProfile(ctx context.Context, caller domain.Identity) (*domain.UserProfile, error)
	GetUserProfile(ctx context.Context, caller domain.Identity, principal string) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, caller domain.Identity, profile domain.UserProfile) error

	GetApps(ctx context.Context, caller domain.Identity) ([]domain.AppInfo, error)
	GetFounderProfile(ctx context.Context, caller domain.Identity) (domain.FounderProfile, error)

	CreateCheckoutSession(ctx context.Context, caller domain.Identity, items []domain.ShoppingItem, successURL, cancelURL string) (string, error)
	GetStripeSessionStatus(ctx context.Context, caller domain.Identity, sessionID string) (domain.StripeSessionStatus, error)
	IsStripeConfigured(ctx context.Context, caller domain.Identity) (bool, error)
	SetStripeConfiguration(ctx context.Context, caller domain.Identity, cfg domain.StripeConfiguration) error

	RunStressTest(ctx context.Context, caller domain.Identity) (domain.StressTestMetrics, error)
	GetLastStressTestResults(ctx context.Context, caller domain.Identity) (*domain.StressTestMetrics, error)
	GetStressTestMetricsHistory(ctx context.Context, caller domain.Identity) ([]domain.StressTestMetrics, error)
	GetDefaultStressTestMetrics(ctx context.Context, caller domain.Identity) (domain.StressTestMetrics, error)

	GetImplementationLibrary(ctx context.Context, caller domain.Identity) (domain.ImplementationLibrary, error)
	GetImplementationGoals(ctx context.Context, caller domain.Identity) ([]domain.ImplementationGoal, error)
	GetDefaultImplementationGoals(ctx context.Context, caller domain.Identity) ([]domain.ImplementationGoal, error)
	AddImplementationGoal(ctx context.Context, caller domain.Identity, goal domain.ImplementationGoal) error
	AddFutureImplementationGoal(ctx context.Context, caller domain.Identity, goal domain.ImplementationGoal) error
	RemoveImplementationGoal(ctx context.Context, caller domain.Identity, goalName string) error

	GetCallerGeneratedContent(ctx context.Context, caller domain.Identity) ([]domain.GeneratedContent, error)
	SaveGeneratedContent(ctx context.Context, caller domain.Identity, content domain.GeneratedContent) error
}
