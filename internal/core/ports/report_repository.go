package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// ReportRepository archives stress-test reports.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.StressTestReport) error
	// FindLatest returns domain.ErrNotFound when the principal has no report.
	FindLatest(ctx context.Context, principal string) (*domain.StressTestReport, error)
	List(ctx context.Context, principal string, limit int) ([]*domain.StressTestReport, error)
}
