package service

import (
	"context"
	"errors"
	"testing"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func TestCatalogService_Apps(t *testing.T) {
	h := newHarness(t)
	svc := NewCatalogService(h.backend, h.queries, discardLogger)
	ctx := context.Background()

	apps, err := svc.Apps(ctx, anonymous)
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 11 {
		t.Fatalf("apps = %d, want 11", len(apps))
	}

	byID := map[string]int{}
	for i, a := range apps {
		byID[a.ID] = i
	}
	tests := []struct {
		id    string
		kind  domain.PricingKind
		badge string
		price string
	}{
		{"blog-newsletter", domain.PricingSubscription, "Subscription", "$10.00/month"},
		{"resume-optimizer", domain.PricingOneTime, "One-Time", "$15.00"},
		{"ad-copy", domain.PricingCredits, "Per Use", "$5.00/use"},
	}
	for _, tt := range tests {
		a := apps[byID[tt.id]]
		if a.Kind != tt.kind || a.Badge != tt.badge || a.Price != tt.price {
			t.Errorf("%s = %+v", tt.id, a)
		}
	}
	if got := apps[0].Icon; got != "/assets/generated/blog-newsletter-icon.dim_128x128.png" {
		t.Errorf("icon = %q", got)
	}

	if _, err := svc.Apps(ctx, alice); err != nil {
		t.Fatal(err)
	}
	if n := h.backend.Calls("getApps"); n != 1 {
		t.Errorf("getApps calls = %d, want 1 (public scope shared)", n)
	}
}

func TestCatalogService_FounderAndStripe(t *testing.T) {
	h := newHarness(t)
	svc := NewCatalogService(h.backend, h.queries, discardLogger)
	ctx := context.Background()

	f, err := svc.Founder(ctx, anonymous)
	if err != nil || f.Name != "Peter Wentworth" {
		t.Fatalf("founder = %+v, %v", f, err)
	}

	ok, err := svc.StripeConfigured(ctx, anonymous)
	if err != nil || ok {
		t.Fatalf("before configure = %v, %v", ok, err)
	}
	h.configureStripe(t)
	if ok, _ := svc.StripeConfigured(ctx, anonymous); !ok {
		t.Error("stripe configured not refetched")
	}
}

func TestCatalogService_GeneratedContent(t *testing.T) {
	h := newHarness(t)
	svc := NewCatalogService(h.backend, h.queries, discardLogger)
	ctx := context.Background()

	if _, err := svc.GeneratedContent(ctx, anonymous); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("anonymous: err = %v", err)
	}

	content, err := svc.GeneratedContent(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if content == nil || len(content) != 0 {
		t.Errorf("content = %#v, want empty slice", content)
	}
}
