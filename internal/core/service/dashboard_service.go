package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

var quickDonationAmounts = []int{5, 10, 25, 50, 100}

// DashboardService assembles the dashboard, payments and donations pages.
// Revenue and donation figures are placeholders until the backend
// exposes them; subscription figures come from the caller profile.
type DashboardService struct {
	profiles ports.ProfileService
	logger   zerolog.Logger
}

func NewDashboardService(profiles ports.ProfileService, logger zerolog.Logger) *DashboardService {
	return &DashboardService{profiles: profiles, logger: logger}
}

// activeSubscriptions lists the single optional subscription when active.
func activeSubscriptions(p *domain.UserProfile) []domain.SubscriptionStatus {
	if p == nil || p.SubscriptionStatus == nil || p.SubscriptionStatus.Status != "active" {
		return []domain.SubscriptionStatus{}
	}
	return []domain.SubscriptionStatus{*p.SubscriptionStatus}
}

func (s *DashboardService) profile(ctx context.Context, id domain.Identity) (*domain.UserProfile, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	st := s.profiles.Current(ctx, id)
	if st.Err != nil {
		return nil, st.Err
	}
	return st.Profile, nil
}

func (s *DashboardService) Dashboard(ctx context.Context, id domain.Identity) (*ports.DashboardView, error) {
	p, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}
	v := &ports.DashboardView{
		KPIs: []ports.Stat{
			{Title: "Revenue Today", Value: "$0.00", Trend: "+0%"},
			{Title: "Active Subscriptions", Value: strconv.Itoa(len(activeSubscriptions(p))), Trend: "+0"},
			{Title: "Runs Today", Value: "0", Trend: "+0"},
			{Title: "Error Rate", Value: "0%", Trend: "0%"},
			{Title: "Donations Today", Value: "$0.00", Trend: "+0"},
		},
	}
	if p != nil {
		v.Credits = p.Credits
	}
	return v, nil
}

func (s *DashboardService) Payments(ctx context.Context, id domain.Identity) (*ports.PaymentsView, error) {
	p, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}
	subs := activeSubscriptions(p)

	totalSpent := "$0.00"
	nextBilling := "N/A"
	if len(subs) > 0 {
		totalSpent = domain.FormatCents(subs[0].MonthlyPriceCents)
		nextBilling = time.Unix(0, subs[0].NextBillingDate).UTC().Format("Jan 2, 2006")
	}

	return &ports.PaymentsView{
		Stats: []ports.Stat{
			{Title: "Total Spent", Value: totalSpent},
			{Title: "Active Subscriptions", Value: strconv.Itoa(len(subs))},
			{Title: "Next Billing", Value: nextBilling},
		},
		Transactions:                 []ports.Transaction{},
		Subscriptions:                subs,
		MultiSubscriptionUnsupported: true,
	}, nil
}

func (s *DashboardService) Donations(context.Context) *ports.DonationsView {
	return &ports.DonationsView{
		Stats: []ports.Stat{
			{Title: "Today", Value: "$0.00"},
			{Title: "This Month", Value: "$0.00"},
			{Title: "Lifetime", Value: "$0.00"},
			{Title: "Total Donors", Value: "0"},
		},
		QuickAmounts: quickDonationAmounts,
		RecentDonors: []string{},
	}
}

// Donate accepts any positive amount. Payment capture is not wired yet,
// the donation is only acknowledged.
func (s *DashboardService) Donate(_ context.Context, id domain.Identity, amount float64, anonymous bool) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", domain.Invalid("Please enter a valid donation amount")
	}
	metrics.DonationsTotal.Inc()
	ev := s.logger.Info().Float64("amount", amount).Bool("anonymous", anonymous)
	if !anonymous && id.Authenticated() {
		ev = ev.Str("principal", id.Principal)
	}
	ev.Msg("donation received")
	return "Thank you for your donation!", nil
}
