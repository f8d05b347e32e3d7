package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func newStressTestService(h *harness, sched *syncScheduler) *StressTestService {
	return NewStressTestService(h.backend, h.queries, h.reports, sched, 0, discardLogger)
}

func startAndProcess(t *testing.T, svc *StressTestService, sched *syncScheduler, id domain.Identity) (*domain.StressTestRun, error) {
	t.Helper()
	run, err := svc.Start(context.Background(), id)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	job := sched.jobs[len(sched.jobs)-1]
	if job.RunID != run.ID || job.Principal != id.Principal {
		t.Fatalf("job = %+v", job)
	}
	procErr := svc.Process(context.Background(), job)
	cur, err := svc.Current(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return cur, procErr
}

func TestStressTestService_CompletesTimeline(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)

	run, err := startAndProcess(t, svc, sched, alice)
	if err != nil {
		t.Fatal(err)
	}
	if run.Status != domain.RunCompleted || run.Progress != 100 || run.CurrentPhase != "Test Complete" {
		t.Fatalf("run = %s %d %q", run.Status, run.Progress, run.CurrentPhase)
	}
	if run.Metrics == nil || run.Metrics.SimulatedUsers != 5000 {
		t.Fatalf("metrics = %+v", run.Metrics)
	}
	if run.FinishedAt == nil {
		t.Error("FinishedAt not set")
	}

	if len(run.Snapshots) != 6 {
		t.Fatalf("snapshots = %d, want 6", len(run.Snapshots))
	}
	for i, users := range []int{500, 1000, 2000, 3500, 5000} {
		s := run.Snapshots[i]
		if s.ActiveUsers != users || s.Throughput != 1200+i*300 || s.Latency != 200+i*20 || s.MemoryUsage != 800+i*120 {
			t.Errorf("snapshot %d = %+v", i, s)
		}
	}
	if last := run.Snapshots[5]; last.ActiveUsers != 5000 || last.Throughput != 2500 || last.Latency != 300 || last.MemoryUsage != 1400 {
		t.Errorf("application snapshot = %+v", last)
	}

	first := run.Logs[0]
	if first.Phase != "Initialization" || first.Message != "Starting large-scale stress test simulation" || first.Type != domain.LogInfo {
		t.Errorf("first log = %+v", first)
	}
	n := len(run.Logs)
	if got := run.Logs[n-2].Message; got != "Success Rate: 99% | Avg Latency: 185ms" {
		t.Errorf("summary log = %q", got)
	}
	if got := run.Logs[n-1].Message; got != "Total Completion Time: 12.6s" {
		t.Errorf("completion log = %q", got)
	}

	var warned bool
	for _, l := range run.Logs {
		if l.Phase == "Bottleneck Detection" && l.Type == domain.LogWarning {
			warned = l.Message == "Detected 2 performance bottlenecks"
		}
	}
	if !warned {
		t.Error("missing bottleneck warning")
	}
}

func TestStressTestService_NoBottlenecks(t *testing.T) {
	h := newHarness(t)
	h.backend.runFn = func(context.Context) (domain.StressTestMetrics, error) {
		return domain.StressTestMetrics{SuccessRate: 100, AverageResponseTimeMs: 90, CompletionTimeMs: 9900}, nil
	}
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)

	run, _ := startAndProcess(t, svc, sched, alice)
	var found bool
	for _, l := range run.Logs {
		if l.Message == "No critical bottlenecks detected" && l.Type == domain.LogSuccess {
			found = true
		}
	}
	if !found {
		t.Error("missing no-bottleneck log")
	}
	if got := run.Logs[len(run.Logs)-1].Message; got != "Total Completion Time: 9.9s" {
		t.Errorf("completion log = %q", got)
	}
}

func TestStressTestService_InvalidatesLastResults(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	if last, err := svc.LastResults(ctx, alice); err != nil || last != nil {
		t.Fatalf("before run: %v, %v", last, err)
	}
	_, _ = startAndProcess(t, svc, sched, alice)

	last, err := svc.LastResults(ctx, alice)
	if err != nil || last == nil || last.ApplicationsTested != 150 {
		t.Fatalf("after run: %v, %v", last, err)
	}
	if hist, _ := svc.History(ctx, alice); len(hist) != 1 {
		t.Errorf("history = %d", len(hist))
	}
}

func TestStressTestService_OneRunPerPrincipal(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	if _, err := svc.Start(ctx, alice); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Start(ctx, alice); !errors.Is(err, domain.ErrRunInProgress) {
		t.Fatalf("second start: err = %v", err)
	}
	if _, err := svc.Start(ctx, bob); err != nil {
		t.Fatalf("other principal: %v", err)
	}
	if _, err := svc.Start(ctx, anonymous); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("anonymous: err = %v", err)
	}
}

func TestStressTestService_ScheduleFailure(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{err: errors.New("queue full")}
	svc := newStressTestService(h, sched)

	if _, err := svc.Start(context.Background(), alice); err == nil {
		t.Fatal("expected error")
	}
	if _, err := svc.Current(context.Background(), alice); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("run kept after failed schedule: %v", err)
	}
}

func TestStressTestService_CancelBeforeStart(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	if _, err := svc.Start(ctx, alice); err != nil {
		t.Fatal(err)
	}
	run, err := svc.Cancel(ctx, alice)
	if err != nil || run.Status != domain.RunCancelled {
		t.Fatalf("Cancel = %+v, %v", run, err)
	}

	if err := svc.Process(ctx, sched.jobs[0]); err != nil {
		t.Fatal(err)
	}
	run, _ = svc.Current(ctx, alice)
	if run.Status != domain.RunCancelled || run.Progress != 0 {
		t.Errorf("run = %s %d", run.Status, run.Progress)
	}
	if h.backend.Calls("runStressTest") != 0 {
		t.Error("backend called for a cancelled run")
	}
}

func TestStressTestService_CancelDuringBackendCall(t *testing.T) {
	h := newHarness(t)
	started := make(chan struct{})
	h.backend.runFn = func(ctx context.Context) (domain.StressTestMetrics, error) {
		close(started)
		<-ctx.Done()
		return domain.StressTestMetrics{}, ctx.Err()
	}
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	if _, err := svc.Start(ctx, alice); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- svc.Process(ctx, sched.jobs[0]) }()

	<-started
	if _, err := svc.Cancel(ctx, alice); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}

	run, _ := svc.Current(ctx, alice)
	if run.Status != domain.RunCancelled || run.Progress != 96 || run.Metrics != nil {
		t.Errorf("run = %s %d %v", run.Status, run.Progress, run.Metrics)
	}

	// a cancelled run frees the slot
	if _, err := svc.Start(ctx, alice); err != nil {
		t.Errorf("restart after cancel: %v", err)
	}
}

func TestStressTestService_BackendFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.RunErr = &domain.BackendError{Op: "runStressTest", Message: "trap"}
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)

	run, err := startAndProcess(t, svc, sched, alice)
	if err == nil {
		t.Fatal("expected Process error")
	}
	if run.Status != domain.RunFailed || run.Progress != 96 {
		t.Fatalf("run = %s %d", run.Status, run.Progress)
	}
	last := run.Logs[len(run.Logs)-1]
	if last.Message != "Stress test encountered an error" || last.Phase != "Error" || last.Type != domain.LogError {
		t.Errorf("last log = %+v", last)
	}
}

func TestStressTestService_WorkerShutdownCancels(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := NewStressTestService(h.backend, h.queries, h.reports, sched, 1, discardLogger)

	if _, err := svc.Start(context.Background(), alice); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Process(ctx, sched.jobs[0]); err != nil {
		t.Fatal(err)
	}
	run, _ := svc.Current(context.Background(), alice)
	if run.Status != domain.RunCancelled {
		t.Errorf("status = %s", run.Status)
	}
}

func TestStressTestService_Report(t *testing.T) {
	h := newHarness(t)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	if _, err := svc.Report(ctx, alice); !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("no runs: err = %v", err)
	}

	run, _ := startAndProcess(t, svc, sched, alice)
	report, err := svc.Report(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if report.RunID != run.ID || len(report.Logs) != len(run.Logs) || report.Performance.SuccessRate != 99 {
		t.Errorf("report = %+v", report)
	}

	archived, err := h.reports.FindLatest(ctx, "alice")
	if err != nil || archived.RunID != run.ID {
		t.Errorf("archive = %+v, %v", archived, err)
	}
}

func TestStressTestService_ReportFallsBackToLastResults(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _ = h.backend.Fake.RunStressTest(ctx, alice)

	svc := newStressTestService(h, &syncScheduler{})
	report, err := svc.Report(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if report.Configuration.SimulatedUsers != 5000 || report.Logs == nil || len(report.Logs) != 0 {
		t.Errorf("report = %+v", report)
	}
}

// scriptedResults makes every backend run return the given success rate and
// remembers it as the last results.
func scriptedResults(h *harness, rate *uint64) {
	var last *domain.StressTestMetrics
	var mu sync.Mutex
	h.backend.runFn = func(context.Context) (domain.StressTestMetrics, error) {
		mu.Lock()
		defer mu.Unlock()
		m := domain.StressTestMetrics{SimulatedUsers: 5000, SuccessRate: *rate, CompletionTimeMs: 12600}
		last = &m
		return m, nil
	}
	h.backend.lastFn = func() *domain.StressTestMetrics {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func TestStressTestService_ReportMatchesLastResultsAfterRestart(t *testing.T) {
	h := newHarness(t)
	rate := uint64(99)
	scriptedResults(h, &rate)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	startAndProcess(t, svc, sched, alice)
	if report, err := svc.Report(ctx, alice); err != nil || report.Performance.SuccessRate != 99 {
		t.Fatalf("first report = %+v, %v", report, err)
	}

	rate = 70
	runB, _ := startAndProcess(t, svc, sched, alice)

	restarted := newStressTestService(h, &syncScheduler{})
	last, err := restarted.LastResults(ctx, alice)
	if err != nil || last.SuccessRate != 70 {
		t.Fatalf("last results = %+v, %v", last, err)
	}
	report, err := restarted.Report(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if report.Performance.SuccessRate != 70 || len(report.Logs) != 0 {
		t.Errorf("report after restart = %d%% with %d logs, want 70%% without logs", report.Performance.SuccessRate, len(report.Logs))
	}

	// once run B is archived its logs come back with it
	if _, err := svc.Report(ctx, alice); err != nil {
		t.Fatal(err)
	}
	report, err = restarted.Report(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if report.RunID != runB.ID || len(report.Logs) != len(runB.Logs) {
		t.Errorf("archived report = run %s with %d logs", report.RunID, len(report.Logs))
	}
}

func TestStressTestService_ReportAfterCancelFollowsLastResults(t *testing.T) {
	h := newHarness(t)
	rate := uint64(99)
	scriptedResults(h, &rate)
	sched := &syncScheduler{}
	svc := newStressTestService(h, sched)
	ctx := context.Background()

	startAndProcess(t, svc, sched, alice)
	if _, err := svc.Report(ctx, alice); err != nil {
		t.Fatal(err)
	}

	rate = 70
	run := h.backend.runFn
	h.backend.runFn = func(ctx context.Context) (domain.StressTestMetrics, error) {
		m, err := run(ctx)
		if _, cerr := svc.Cancel(context.Background(), alice); cerr != nil {
			t.Error(cerr)
		}
		return m, err
	}
	cur, _ := startAndProcess(t, svc, sched, alice)
	if cur.Status != domain.RunCancelled {
		t.Fatalf("status = %s", cur.Status)
	}

	report, err := svc.Report(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if report.Performance.SuccessRate != 70 {
		t.Errorf("report success rate = %d, want the displayed 70", report.Performance.SuccessRate)
	}
}
