package service

import (
	"context"
	"fmt"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

var rampUpBatches = []int{500, 1000, 2000, 3500, 5000}

type stageGroup struct {
	name  string
	count int
	ms    int
}

var stageGroups = []stageGroup{
	{name: "Input Collection Stages", count: 45, ms: 800},
	{name: "Payment Processing Stages", count: 38, ms: 1000},
	{name: "AI Generation Stages", count: 52, ms: 1200},
	{name: "Output Rendering Stages", count: 42, ms: 700},
}

// timelineRecorder appends observable progress to a run.
type timelineRecorder struct {
	s  *StressTestService
	st *runState
}

func (r timelineRecorder) phase(name string) {
	r.st.update(func(run *domain.StressTestRun) { run.CurrentPhase = name })
}

func (r timelineRecorder) log(phase, msg string, typ domain.LogType) {
	ts := r.s.now().UnixMilli()
	r.st.update(func(run *domain.StressTestRun) {
		run.Logs = append(run.Logs, domain.TestLog{Timestamp: ts, Phase: phase, Message: msg, Type: typ})
	})
}

func (r timelineRecorder) sample(users, throughput, latency, memory int) {
	ts := r.s.now().UnixMilli()
	r.st.update(func(run *domain.StressTestRun) {
		run.Snapshots = append(run.Snapshots, domain.PerformanceSnapshot{
			Timestamp: ts, ActiveUsers: users, Throughput: throughput, Latency: latency, MemoryUsage: memory,
		})
	})
}

func (r timelineRecorder) progress(p int) {
	r.st.update(func(run *domain.StressTestRun) { run.Progress = p })
}

// timeline plays the scripted run. Only the backend call can fail it; every
// other error is a cancellation.
func (s *StressTestService) timeline(ctx context.Context, st *runState, id domain.Identity) error {
	r := timelineRecorder{s: s, st: st}

	r.phase("Initializing Test Environment")
	r.log("Initialization", "Starting large-scale stress test simulation", domain.LogInfo)
	r.log("Initialization", "Target: 5,000 concurrent users across 150 applications", domain.LogInfo)
	r.log("Initialization", "Workflow stages: 177 unique stages", domain.LogInfo)
	if err := s.wait(ctx, 800); err != nil {
		return err
	}
	r.progress(5)

	r.phase("Ramping Up Concurrent Users")
	for i, users := range rampUpBatches {
		r.log("User Ramp-Up", fmt.Sprintf("Simulating %d concurrent users...", users), domain.LogInfo)
		r.sample(users, 1200+i*300, 200+i*20, 800+i*120)
		if err := s.wait(ctx, 600); err != nil {
			return err
		}
		r.progress(5 + (i+1)*8)
	}
	r.log("User Ramp-Up", "Peak load of 5,000 users reached", domain.LogSuccess)

	r.phase("Testing 150 Applications")
	r.log("Application Testing", "Testing core portfolio applications (11 apps)", domain.LogInfo)
	if err := s.wait(ctx, 1000); err != nil {
		return err
	}
	r.progress(50)
	r.log("Application Testing", "Testing custom wizard-created applications (139 apps)", domain.LogInfo)
	if err := s.wait(ctx, 1200); err != nil {
		return err
	}
	r.progress(60)
	r.log("Application Testing", "All 150 applications validated", domain.LogSuccess)
	r.sample(5000, 2500, 300, 1400)

	r.phase("Validating 177 Workflow Stages")
	progress := 60
	for _, g := range stageGroups {
		r.log("Workflow Validation", fmt.Sprintf("Testing %s (%d stages)", g.name, g.count), domain.LogInfo)
		if err := s.wait(ctx, g.ms); err != nil {
			return err
		}
		progress += 7
		r.progress(progress)
	}
	r.log("Workflow Validation", "All 177 workflow stages validated successfully", domain.LogSuccess)

	r.phase("Collecting Performance Metrics")
	for _, step := range []struct {
		msg      string
		ms       int
		progress int
	}{
		{"Measuring response latency across all stages", 600, 90},
		{"Analyzing throughput and success rates", 500, 93},
		{"Monitoring memory consumption and resource utilization", 500, 96},
	} {
		r.log("Metrics Collection", step.msg, domain.LogInfo)
		if err := s.wait(ctx, step.ms); err != nil {
			return err
		}
		r.progress(step.progress)
	}

	r.phase("Executing Backend Analysis")
	r.log("Backend Analysis", "Running comprehensive backend stress test", domain.LogInfo)
	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := query.Mutate(ctx, s.queries,
		query.MutationOptions{
			Scope:       query.CallerScope(id),
			Invalidates: []string{query.KeyLastStressTestResults, query.KeyStressTestHistory},
		},
		func(ctx context.Context) (domain.StressTestMetrics, error) {
			return s.backend.RunStressTest(ctx, id)
		})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return wrap("run stress test", err)
	}
	st.update(func(run *domain.StressTestRun) { run.Metrics = &result })
	r.progress(98)

	r.phase("Detecting Bottlenecks")
	r.log("Bottleneck Detection", "Analyzing system bottlenecks", domain.LogInfo)
	if err := s.wait(ctx, 400); err != nil {
		return err
	}
	if result.BottlenecksDetected > 0 {
		r.log("Bottleneck Detection", fmt.Sprintf("Detected %d performance bottlenecks", result.BottlenecksDetected), domain.LogWarning)
	} else {
		r.log("Bottleneck Detection", "No critical bottlenecks detected", domain.LogSuccess)
	}
	r.progress(100)

	r.phase("Test Complete")
	r.log("Complete", "Stress test completed successfully", domain.LogSuccess)
	r.log("Complete", fmt.Sprintf("Success Rate: %d%% | Avg Latency: %dms", result.SuccessRate, result.AverageResponseTimeMs), domain.LogSuccess)
	r.log("Complete", fmt.Sprintf("Total Completion Time: %.1fs", float64(result.CompletionTimeMs)/1000), domain.LogInfo)
	return nil
}
