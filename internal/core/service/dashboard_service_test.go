package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func TestDashboardService_Donate(t *testing.T) {
	svc := NewDashboardService(nil, discardLogger)
	ctx := context.Background()

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := svc.Donate(ctx, alice, amount, false)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) || ve.Message != "Please enter a valid donation amount" {
			t.Errorf("amount %v: err = %v", amount, err)
		}
	}

	msg, err := svc.Donate(ctx, anonymous, 12.5, true)
	if err != nil || msg != "Thank you for your donation!" {
		t.Errorf("Donate = %q, %v", msg, err)
	}
}

func TestDashboardService_Donations(t *testing.T) {
	svc := NewDashboardService(nil, discardLogger)
	v := svc.Donations(context.Background())
	if len(v.Stats) != 4 || len(v.QuickAmounts) != 5 || v.RecentDonors == nil {
		t.Errorf("donations = %+v", v)
	}
}

func TestDashboardService_RequiresIdentity(t *testing.T) {
	h := newHarness(t)
	svc := NewDashboardService(h.profiles, discardLogger)
	ctx := context.Background()

	if _, err := svc.Dashboard(ctx, anonymous); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Dashboard: err = %v", err)
	}
	if _, err := svc.Payments(ctx, anonymous); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Payments: err = %v", err)
	}
}

func TestDashboardService_PaymentsWithSubscription(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	next := time.Date(2026, time.November, 19, 0, 0, 0, 0, time.UTC)
	err := h.backend.Fake.SaveCallerUserProfile(ctx, alice, domain.UserProfile{
		Name:    "Alice",
		Email:   "alice@example.com",
		Credits: 40,
		SubscriptionStatus: &domain.SubscriptionStatus{
			AppID:             "blog-newsletter",
			Status:            "active",
			NextBillingDate:   next.UnixNano(),
			MonthlyPriceCents: 1000,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	svc := NewDashboardService(h.profiles, discardLogger)

	p, err := svc.Payments(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"$10.00", "1", "Nov 19, 2026"}
	for i, s := range p.Stats {
		if s.Value != want[i] {
			t.Errorf("%s = %q, want %q", s.Title, s.Value, want[i])
		}
	}
	if len(p.Subscriptions) != 1 || !p.MultiSubscriptionUnsupported || p.Transactions == nil {
		t.Errorf("payments = %+v", p)
	}

	d, err := svc.Dashboard(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if d.Credits != 40 || d.KPIs[1].Value != "1" {
		t.Errorf("dashboard = %+v", d)
	}
}

func TestDashboardService_InactiveSubscriptionIgnored(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_ = h.backend.Fake.SaveCallerUserProfile(ctx, alice, domain.UserProfile{
		Name:               "Alice",
		Email:              "alice@example.com",
		SubscriptionStatus: &domain.SubscriptionStatus{Status: "canceled", MonthlyPriceCents: 1000},
	})
	svc := NewDashboardService(h.profiles, discardLogger)

	p, err := svc.Payments(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Subscriptions) != 0 || p.Stats[2].Value != "N/A" {
		t.Errorf("payments = %+v", p)
	}
}
