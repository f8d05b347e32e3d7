package service

import (
	"context"
	"errors"
	"testing"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func TestProfileService_Current_States(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if st := h.profiles.Current(ctx, anonymous); st.State != domain.StateUnauthenticated || st.Fetched {
		t.Errorf("anonymous: %+v", st)
	}
	if h.backend.Calls("getCallerUserProfile") != 0 {
		t.Error("anonymous profile query reached the backend")
	}

	if st := h.profiles.Current(ctx, alice); st.State != domain.StateNeedsProfile || !st.Fetched {
		t.Errorf("no profile: %+v", st)
	}
}

func TestProfileService_Current_ErrorKeepsModalClosed(t *testing.T) {
	h := newHarness(t)
	h.backend.getProfileErr = errors.New("boom")

	st := h.profiles.Current(context.Background(), alice)
	if st.State != domain.StateHasProfile || st.Fetched || st.Err == nil {
		t.Errorf("state = %+v", st)
	}
	if n := h.backend.Calls("getCallerUserProfile"); n != 1 {
		t.Errorf("profile query attempts = %d, want 1 (no retry)", n)
	}
}

func TestProfileService_Setup_ValidatesBeforeBackend(t *testing.T) {
	cases := []struct {
		name, email, want string
	}{
		{"   ", "a@x.io", "Please enter your name"},
		{"Alice", "ax.io", "Please enter a valid email"},
		{"Alice", "  ", "Please enter a valid email"},
	}
	for _, tc := range cases {
		h := newHarness(t)
		_, err := h.profiles.Setup(context.Background(), alice, tc.name, tc.email)
		if !errors.Is(err, domain.ErrValidation) || err.Error() != tc.want {
			t.Errorf("Setup(%q, %q) error = %v, want %q", tc.name, tc.email, err, tc.want)
		}
		if h.backend.Calls("saveCallerUserProfile") != 0 {
			t.Errorf("Setup(%q, %q) reached the backend", tc.name, tc.email)
		}
	}
}

func TestProfileService_Setup_RefetchesAfterSave(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if st := h.profiles.Current(ctx, alice); st.State != domain.StateNeedsProfile {
		t.Fatalf("state = %s", st.State)
	}

	p, err := h.profiles.Setup(ctx, alice, "  Alice Liddell ", "alice@example.com ")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.Name != "Alice Liddell" || p.Email != "alice@example.com" || p.Credits != 0 || p.SubscriptionStatus != nil {
		t.Errorf("profile = %+v", p)
	}

	st := h.profiles.Current(ctx, alice)
	if st.State != domain.StateHasProfile || st.Profile == nil || st.Profile.Name != "Alice Liddell" {
		t.Fatalf("after setup: %+v", st)
	}
	if n := h.backend.Calls("getCallerUserProfile"); n != 2 {
		t.Errorf("profile fetches = %d, want 2", n)
	}
}

func TestProfileService_Setup_Twice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.profiles.Setup(ctx, alice, "Alice", "a@x.io"); err != nil {
		t.Fatal(err)
	}
	if _, err := h.profiles.Setup(ctx, alice, "Alice", "a@x.io"); !errors.Is(err, domain.ErrProfileExists) {
		t.Errorf("second setup error = %v", err)
	}
}

func TestProfileService_Setup_FetchFailureKeepsProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	sub := &domain.SubscriptionStatus{AppID: "blog-newsletter", Status: "active", MonthlyPriceCents: 1000}
	if err := h.profiles.Save(ctx, alice, domain.UserProfile{Name: "Alice", Email: "a@x.io", Credits: 50, SubscriptionStatus: sub}); err != nil {
		t.Fatal(err)
	}

	h.backend.getProfileErr = errors.New("boom")
	_, err := h.profiles.Setup(ctx, alice, "Mallory", "m@x.io")
	if !errors.Is(err, domain.ErrBackend) {
		t.Errorf("Setup error = %v, want backend error", err)
	}
	if n := h.backend.Calls("saveCallerUserProfile"); n != 1 {
		t.Errorf("profile saves = %d, want only the initial one", n)
	}

	stored, err := h.backend.Fake.GetCallerUserProfile(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Name != "Alice" || stored.Credits != 50 || stored.SubscriptionStatus == nil {
		t.Errorf("stored profile = %+v", stored)
	}
}

func TestProfileService_Save_FailureKeepsCache(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.profiles.Setup(ctx, alice, "Alice", "a@x.io"); err != nil {
		t.Fatal(err)
	}
	h.profiles.Current(ctx, alice)
	before := h.backend.Calls("getCallerUserProfile")

	h.backend.saveProfileErr = errors.New("rejected")
	err := h.profiles.Save(ctx, alice, domain.UserProfile{Name: "Alicia", Email: "a@x.io"})
	if err == nil {
		t.Fatal("expected error")
	}

	st := h.profiles.Current(ctx, alice)
	if st.Profile.Name != "Alice" || h.backend.Calls("getCallerUserProfile") != before {
		t.Errorf("cache changed after failed save: %+v", st.Profile)
	}
}

func TestProfileService_Save_ReplacesWholesale(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	sub := &domain.SubscriptionStatus{AppID: "blog-newsletter", Status: "active", MonthlyPriceCents: 1000}
	if err := h.profiles.Save(ctx, alice, domain.UserProfile{Name: "Alice", Email: "a@x.io", Credits: 7, SubscriptionStatus: sub}); err != nil {
		t.Fatal(err)
	}
	if err := h.profiles.Save(ctx, alice, domain.UserProfile{Name: "Alice", Email: "a@x.io"}); err != nil {
		t.Fatal(err)
	}

	st := h.profiles.Current(ctx, alice)
	if st.Profile.Credits != 0 || st.Profile.SubscriptionStatus != nil {
		t.Errorf("profile = %+v", st.Profile)
	}
}

func TestProfileService_RequiresIdentity(t *testing.T) {
	h := newHarness(t)
	if _, err := h.profiles.Setup(context.Background(), anonymous, "A", "a@x.io"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("err = %v", err)
	}
}

func TestProfileService_Save_TrimsLikeSetup(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.profiles.Save(ctx, alice, domain.UserProfile{Name: "  Alice ", Email: " a@x.io  ", Credits: 3}); err != nil {
		t.Fatal(err)
	}
	stored, err := h.backend.Fake.GetCallerUserProfile(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Name != "Alice" || stored.Email != "a@x.io" || stored.Credits != 3 {
		t.Errorf("stored profile = %+v", stored)
	}
}
