package service

import (
	"context"
	"errors"
	"testing"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func TestLibraryService_PlaceholdersWhenNoFutureGoals(t *testing.T) {
	h := newHarness(t)
	svc := NewLibraryService(h.backend, h.queries, discardLogger)

	lib, err := svc.Library(context.Background(), anonymous)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Goals) != 3 || lib.Goals[0].GoalName != "Subscription Billing" {
		t.Errorf("goals = %+v", lib.Goals)
	}
	if !lib.ComingSoon || len(lib.FutureGoals) != len(domain.FuturePlaceholders) {
		t.Errorf("future = %+v coming soon %v", lib.FutureGoals, lib.ComingSoon)
	}
}

func TestLibraryService_AdminEditsInvalidateLibrary(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_ = h.backend.InitializeAccessControl(ctx, alice)
	svc := NewLibraryService(h.backend, h.queries, discardLogger)

	if _, err := svc.Library(ctx, alice); err != nil {
		t.Fatal(err)
	}

	future := domain.ImplementationGoal{GoalName: "Edge Caching", UseCase: "Serve pages fast", Example: "CDN in front of the portal"}
	if err := svc.AddFutureGoal(ctx, alice, future); err != nil {
		t.Fatal(err)
	}
	goal := domain.ImplementationGoal{GoalName: "Audit Trail", UseCase: "Track admin edits", Example: "Append-only log"}
	if err := svc.AddGoal(ctx, alice, goal); err != nil {
		t.Fatal(err)
	}

	lib, err := svc.Library(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if lib.ComingSoon || len(lib.FutureGoals) != 1 || lib.FutureGoals[0].GoalName != "Edge Caching" {
		t.Errorf("future = %+v", lib.FutureGoals)
	}
	if n := len(lib.Goals); n != 4 || lib.Goals[n-1].GoalName != "Audit Trail" {
		t.Errorf("goals = %+v", lib.Goals)
	}

	if err := svc.RemoveGoal(ctx, alice, "Audit Trail"); err != nil {
		t.Fatal(err)
	}
	lib, _ = svc.Library(ctx, alice)
	if len(lib.Goals) != 3 {
		t.Errorf("goals after remove = %d", len(lib.Goals))
	}
}

func TestLibraryService_NonAdminRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_ = h.backend.InitializeAccessControl(ctx, alice)
	_ = h.backend.InitializeAccessControl(ctx, bob)
	svc := NewLibraryService(h.backend, h.queries, discardLogger)

	goal := domain.ImplementationGoal{GoalName: "x", UseCase: "y", Example: "z"}
	err := svc.AddGoal(ctx, bob, goal)
	if !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("err = %v, want ErrBackend", err)
	}
	var be *domain.BackendError
	if !errors.As(err, &be) || be.Message != "Unauthorized: Only admins can perform this action" {
		t.Errorf("backend error = %v", be)
	}
}

func TestLibraryService_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	svc := NewLibraryService(h.backend, h.queries, discardLogger)

	err := svc.AddGoal(ctx, alice, domain.ImplementationGoal{GoalName: "x", UseCase: "  "})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Message != "Please fill in all fields" {
		t.Errorf("err = %v", err)
	}
	if err := svc.RemoveGoal(ctx, alice, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("remove empty name: err = %v", err)
	}
	if err := svc.AddFutureGoal(ctx, anonymous, domain.ImplementationGoal{}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("anonymous: err = %v", err)
	}
}
