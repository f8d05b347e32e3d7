package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// Stat is one KPI card.
type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend string `json:"trend,omitempty"`
}

type DashboardView struct {
	KPIs    []Stat `json:"kpis"`
	Credits uint64 `json:"credits"`
}

type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
}

type PaymentsView struct {
	Stats         []Stat                      `json:"stats"`
	Transactions  []Transaction               `json:"transactions"`
	Subscriptions []domain.SubscriptionStatus `json:"subscriptions"`
	// MultiSubscriptionUnsupported flags that profiles hold at most one subscription.
	MultiSubscriptionUnsupported bool `json:"multiSubscriptionUnsupported"`
}

type DonationsView struct {
	Stats        []Stat   `json:"stats"`
	QuickAmounts []int    `json:"quickAmounts"`
	RecentDonors []string `json:"recentDonors"`
}

type DashboardService interface {
	Dashboard(ctx context.Context, id domain.Identity) (*DashboardView, error)
	Payments(ctx context.Context, id domain.Identity) (*PaymentsView, error)
	Donations(ctx context.Context) *DonationsView
	Donate(ctx context.Context, id domain.Identity, amount float64, anonymous bool) (string, error)
}
