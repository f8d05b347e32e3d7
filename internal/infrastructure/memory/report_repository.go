package memory

import (
	"context"
	"sync"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

type ReportRepository struct {
	mu      sync.RWMutex
	reports map[string][]*domain.StressTestReport
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{reports: make(map[string][]*domain.StressTestReport)}
}

func (r *ReportRepository) Save(_ context.Context, report *domain.StressTestReport) error {
	cp := *report
	r.mu.Lock()
	r.reports[report.Principal] = append(r.reports[report.Principal], &cp)
	r.mu.Unlock()
	return nil
}

func (r *ReportRepository) FindLatest(_ context.Context, principal string) (*domain.StressTestReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.reports[principal]
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	cp := *list[len(list)-1]
	return &cp, nil
}

// List returns the newest reports first.
func (r *ReportRepository) List(_ context.Context, principal string, limit int) ([]*domain.StressTestReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.reports[principal]
	out := make([]*domain.StressTestReport, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		cp := *list[i]
		out = append(out, &cp)
	}
	return out, nil
}
