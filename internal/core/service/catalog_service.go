package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

// defaultAppRoute is where catalog apps without a dedicated page open.
const defaultAppRoute = "/blog-generator"

var appRoutes = map[string]string{
	"blog-newsletter": "/blog-generator",
}

type CatalogService struct {
	backend ports.BackendClient
	queries *query.Client
	logger  zerolog.Logger
}

func NewCatalogService(backend ports.BackendClient, queries *query.Client, logger zerolog.Logger) *CatalogService {
	return &CatalogService{backend: backend, queries: queries, logger: logger}
}

func (s *CatalogService) Apps(ctx context.Context, id domain.Identity) ([]ports.CatalogApp, error) {
	res := query.Fetch(ctx, s.queries, query.Public(query.KeyApps), func(ctx context.Context) ([]domain.AppInfo, error) {
		return s.backend.GetApps(ctx, id)
	})
	apps, err := publicResult(res)
	if err != nil {
		return nil, wrap("get apps", err)
	}

	out := make([]ports.CatalogApp, 0, len(apps))
	for _, a := range apps {
		out = append(out, catalogApp(a))
	}
	return out, nil
}

func catalogApp(a domain.AppInfo) ports.CatalogApp {
	badge, price := domain.PricingBadge(a.PricingModel)
	route, ok := appRoutes[a.ID]
	if !ok {
		route = defaultAppRoute
	}
	return ports.CatalogApp{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Kind:        a.PricingModel.Kind(),
		Badge:       badge,
		Price:       price,
		Icon:        fmt.Sprintf("/assets/generated/%s-icon.dim_128x128.png", a.ID),
		Route:       route,
	}
}

func (s *CatalogService) Founder(ctx context.Context, id domain.Identity) (*domain.FounderProfile, error) {
	res := query.Fetch(ctx, s.queries, query.Public(query.KeyFounderProfile), func(ctx context.Context) (domain.FounderProfile, error) {
		return s.backend.GetFounderProfile(ctx, id)
	})
	f, err := publicResult(res)
	if err != nil {
		return nil, wrap("get founder profile", err)
	}
	return &f, nil
}

func (s *CatalogService) StripeConfigured(ctx context.Context, id domain.Identity) (bool, error) {
	res := query.Fetch(ctx, s.queries, query.Public(query.KeyStripeConfigured), func(ctx context.Context) (bool, error) {
		return s.backend.IsStripeConfigured(ctx, id)
	})
	ok, err := publicResult(res)
	return ok, wrap("is stripe configured", err)
}

func (s *CatalogService) GeneratedContent(ctx context.Context, id domain.Identity) ([]domain.GeneratedContent, error) {
	res := query.Fetch(ctx, s.queries, query.Caller(id, query.KeyGeneratedContent), func(ctx context.Context) ([]domain.GeneratedContent, error) {
		return s.backend.GetCallerGeneratedContent(ctx, id)
	})
	content, err := callerResult(id, res)
	if err != nil {
		return nil, wrap("get generated content", err)
	}
	if content == nil {
		content = []domain.GeneratedContent{}
	}
	return content, nil
}
