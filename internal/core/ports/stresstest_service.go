package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// StressTestJob asks a worker to execute a scheduled run.
type StressTestJob struct {
	RunID     string
	Principal string
}

// StressTestProcessor executes runs on behalf of the dispatcher.
type StressTestProcessor interface {
	Process(ctx context.Context, job StressTestJob) error
}

type StressTestService interface {
	Start(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error)
	Current(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error)
	Cancel(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error)
	LastResults(ctx context.Context, id domain.Identity) (*domain.StressTestMetrics, error)
	History(ctx context.Context, id domain.Identity) ([]domain.StressTestMetrics, error)
	Defaults(ctx context.Context, id domain.Identity) (domain.StressTestMetrics, error)
	// Report returns the report of the latest finished run, archiving it.
	Report(ctx context.Context, id domain.Identity) (*domain.StressTestReport, error)
}

// StressTestScheduler hands runs to background workers.
type StressTestScheduler interface {
	Enqueue(job StressTestJob) error
}
