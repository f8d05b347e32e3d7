package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

// runState is the live state of one principal's latest run.
type runState struct {
	mu     sync.Mutex
	run    domain.StressTestRun
	cancel context.CancelFunc
	ctx    context.Context
}

// update applies fn while the run is still running.
func (r *runState) update(fn func(run *domain.StressTestRun)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.run.Status.Finished() {
		return false
	}
	fn(&r.run)
	return true
}

func (r *runState) snapshot(now time.Time) domain.StressTestRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := r.run
	run.Logs = slices.Clone(r.run.Logs)
	run.Snapshots = slices.Clone(r.run.Snapshots)
	if r.run.Metrics != nil {
		m := *r.run.Metrics
		run.Metrics = &m
	}
	end := now
	if run.FinishedAt != nil {
		end = *run.FinishedAt
	}
	run.ElapsedMs = end.Sub(run.StartedAt).Milliseconds()
	return run
}

// StressTestService runs the scripted stress-test timeline as a background
// task. Each principal has at most one running run.
type StressTestService struct {
	backend   ports.BackendClient
	queries   *query.Client
	reports   ports.ReportRepository
	scheduler ports.StressTestScheduler
	timeScale float64
	logger    zerolog.Logger
	now       func() time.Time

	mu   sync.Mutex
	runs map[string]*runState
}

// NewStressTestService creates the service. timeScale multiplies every
// timeline delay; zero runs the timeline without waiting.
func NewStressTestService(
	backend ports.BackendClient,
	queries *query.Client,
	reports ports.ReportRepository,
	scheduler ports.StressTestScheduler,
	timeScale float64,
	logger zerolog.Logger,
) *StressTestService {
	return &StressTestService{
		backend:   backend,
		queries:   queries,
		reports:   reports,
		scheduler: scheduler,
		timeScale: max(timeScale, 0),
		logger:    logger,
		now:       time.Now,
		runs:      make(map[string]*runState),
	}
}

func (s *StressTestService) Start(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if st, ok := s.runs[id.Principal]; ok {
		st.mu.Lock()
		running := !st.run.Status.Finished()
		st.mu.Unlock()
		if running {
			s.mu.Unlock()
			return nil, domain.ErrRunInProgress
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	st := &runState{
		ctx:    runCtx,
		cancel: cancel,
		run: domain.StressTestRun{
			ID:        uuid.NewString(),
			Principal: id.Principal,
			Status:    domain.RunRunning,
			Logs:      []domain.TestLog{},
			Snapshots: []domain.PerformanceSnapshot{},
			StartedAt: s.now(),
		},
	}
	prev := s.runs[id.Principal]
	s.runs[id.Principal] = st
	s.mu.Unlock()

	if err := s.scheduler.Enqueue(ports.StressTestJob{RunID: st.run.ID, Principal: id.Principal}); err != nil {
		cancel()
		s.mu.Lock()
		if prev != nil {
			s.runs[id.Principal] = prev
		} else {
			delete(s.runs, id.Principal)
		}
		s.mu.Unlock()
		return nil, fmt.Errorf("schedule stress test: %w", err)
	}

	s.logger.Info().Str("principal", id.Principal).Str("run_id", st.run.ID).Msg("stress test scheduled")
	run := st.snapshot(s.now())
	return &run, nil
}

// Current returns the latest run of the caller.
func (s *StressTestService) Current(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	st := s.state(id.Principal)
	if st == nil {
		return nil, domain.ErrNotFound
	}
	run := st.snapshot(s.now())
	return &run, nil
}

func (s *StressTestService) Cancel(ctx context.Context, id domain.Identity) (*domain.StressTestRun, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	st := s.state(id.Principal)
	if st == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	cancelled := st.update(func(run *domain.StressTestRun) {
		run.Status = domain.RunCancelled
		run.FinishedAt = &now
		run.Logs = append(run.Logs, domain.TestLog{
			Timestamp: now.UnixMilli(), Phase: "Cancelled", Message: "Stress test cancelled", Type: domain.LogWarning,
		})
	})
	st.cancel()
	if cancelled {
		metrics.StressTestRunsTotal.WithLabelValues(string(domain.RunCancelled)).Inc()
		s.logger.Info().Str("principal", id.Principal).Str("run_id", st.run.ID).Msg("stress test cancelled")
	}

	run := st.snapshot(now)
	return &run, nil
}

func (s *StressTestService) state(principal string) *runState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[principal]
}

// Process executes a scheduled run. It is called by the dispatcher workers.
func (s *StressTestService) Process(ctx context.Context, job ports.StressTestJob) error {
	st := s.state(job.Principal)
	if st == nil || st.run.ID != job.RunID {
		return nil
	}

	stop := context.AfterFunc(ctx, st.cancel)
	defer stop()

	start := s.now()
	err := s.timeline(st.ctx, st, domain.Identity{Principal: job.Principal})
	st.cancel()

	status := domain.RunCompleted
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		// Cancel already finished the run; a worker shutdown finishes it here.
		status = domain.RunCancelled
	default:
		status = domain.RunFailed
	}

	now := s.now()
	finished := st.update(func(run *domain.StressTestRun) {
		run.Status = status
		run.FinishedAt = &now
		if status == domain.RunFailed {
			run.Logs = append(run.Logs, domain.TestLog{
				Timestamp: now.UnixMilli(), Phase: "Error", Message: "Stress test encountered an error", Type: domain.LogError,
			})
		}
	})
	if finished {
		metrics.StressTestRunsTotal.WithLabelValues(string(status)).Inc()
	}
	metrics.StressTestRunDuration.WithLabelValues(string(status)).Observe(now.Sub(start).Seconds())

	if status == domain.RunFailed {
		return fmt.Errorf("stress test %s: %w", job.RunID, err)
	}
	s.logger.Info().Str("run_id", job.RunID).Str("status", string(status)).Msg("stress test finished")
	return nil
}

// wait sleeps for the scaled delay. The context is checked before every
// delay so a cancelled run never starts another one.
func (s *StressTestService) wait(ctx context.Context, ms int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := time.Duration(float64(ms) * s.timeScale * float64(time.Millisecond))
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *StressTestService) LastResults(ctx context.Context, id domain.Identity) (*domain.StressTestMetrics, error) {
	res := query.Fetch(ctx, s.queries, query.Caller(id, query.KeyLastStressTestResults), func(ctx context.Context) (*domain.StressTestMetrics, error) {
		return s.backend.GetLastStressTestResults(ctx, id)
	})
	m, err := callerResult(id, res)
	return m, wrap("get last stress test results", err)
}

func (s *StressTestService) History(ctx context.Context, id domain.Identity) ([]domain.StressTestMetrics, error) {
	opts := query.Caller(id, query.KeyStressTestHistory)
	res := query.Fetch(ctx, s.queries, opts, func(ctx context.Context) ([]domain.StressTestMetrics, error) {
		return s.backend.GetStressTestMetricsHistory(ctx, id)
	})
	h, err := callerResult(id, res)
	if err != nil {
		return nil, wrap("get stress test history", err)
	}
	if h == nil {
		h = []domain.StressTestMetrics{}
	}
	return h, nil
}

func (s *StressTestService) Defaults(ctx context.Context, id domain.Identity) (domain.StressTestMetrics, error) {
	m, err := s.backend.GetDefaultStressTestMetrics(ctx, id)
	return m, wrap("get default stress test metrics", err)
}

// Report builds the downloadable report of the caller's last results, the
// same metrics the stress-test page shows. Logs come from the run in this
// process or the archive when their results match; otherwise the report
// has none.
func (s *StressTestService) Report(ctx context.Context, id domain.Identity) (*domain.StressTestReport, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}

	last, err := s.LastResults(ctx, id)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, domain.ErrNoResults
	}
	now := s.now()

	if st := s.state(id.Principal); st != nil {
		run := st.snapshot(now)
		if run.Status == domain.RunCompleted && run.Metrics != nil && *run.Metrics == *last {
			report := domain.NewStressTestReport(*run.Metrics, run.Logs, now)
			report.ID = run.ID
			report.RunID = run.ID
			report.Principal = id.Principal
			if err := s.reports.Save(ctx, &report); err != nil {
				s.logger.Warn().Err(err).Str("run_id", run.ID).Msg("report archive failed")
			}
			return &report, nil
		}
	}

	report := domain.NewStressTestReport(*last, nil, now)
	report.ID = uuid.NewString()
	report.Principal = id.Principal

	archived, err := s.reports.FindLatest(ctx, id.Principal)
	switch {
	case err == nil && archived.SameResults(report):
		return archived, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		s.logger.Warn().Err(err).Str("principal", id.Principal).Msg("report archive lookup failed")
	}
	return &report, nil
}
