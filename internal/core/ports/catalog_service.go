package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// CatalogApp is an AppInfo decorated for the catalog page.
type CatalogApp struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Kind        domain.PricingKind `json:"pricingKind"`
	Badge       string             `json:"badge"`
	Price       string             `json:"price"`
	Icon        string             `json:"icon"`
	Route       string             `json:"route"`
}

type CatalogService interface {
	Apps(ctx context.Context, id domain.Identity) ([]CatalogApp, error)
	Founder(ctx context.Context, id domain.Identity) (*domain.FounderProfile, error)
	StripeConfigured(ctx context.Context, id domain.Identity) (bool, error)
	GeneratedContent(ctx context.Context, id domain.Identity) ([]domain.GeneratedContent, error)
}
