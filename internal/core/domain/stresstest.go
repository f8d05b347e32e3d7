package domain

import (
	"fmt"
	"time"
)

// StressTestMetrics is produced wholesale by the backend on each run.
// Unsigned fields make negative values unrepresentable.
type StressTestMetrics struct {
	SimulatedUsers              uint64 `json:"simulatedUsers"`
	ApplicationsTested          uint64 `json:"applicationsTested"`
	WorkflowStagesTested        uint64 `json:"workflowStagesTested"`
	PeakLoad                    uint64 `json:"peakLoad"`
	ThroughputRps               uint64 `json:"throughputRps"`
	LatencyMs                   uint64 `json:"latencyMs"`
	AverageResponseTimeMs       uint64 `json:"averageResponseTimeMs"`
	SuccessRate                 uint64 `json:"successRate"`
	ErrorRate                   uint64 `json:"errorRate"`
	MemoryUsageMb               uint64 `json:"memoryUsageMb"`
	BottlenecksDetected         uint64 `json:"bottlenecksDetected"`
	CompletionTimeMs            uint64 `json:"completionTimeMs"`
	ReportInsights              string `json:"reportInsights"`
	OptimizationRecommendations string `json:"optimizationRecommendations"`
}

// LogType classifies a stress-test log line.
type LogType string

const (
	LogInfo    LogType = "info"
	LogSuccess LogType = "success"
	LogWarning LogType = "warning"
	LogError   LogType = "error"
)

// TestLog is one timestamped line of the run timeline. Timestamp is epoch ms.
type TestLog struct {
	Timestamp int64   `json:"timestamp"`
	Phase     string  `json:"phase"`
	Message   string  `json:"message"`
	Type      LogType `json:"type"`
}

// PerformanceSnapshot is a synthetic sample shown while the run progresses.
type PerformanceSnapshot struct {
	Timestamp   int64 `json:"timestamp"`
	ActiveUsers int   `json:"activeUsers"`
	Throughput  int   `json:"throughput"`
	Latency     int   `json:"latency"`
	MemoryUsage int   `json:"memoryUsage"`
}

// RunStatus is the lifecycle of one stress-test run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
	RunCancelled RunStatus = "cancelled"
)

func (s RunStatus) Finished() bool { return s != RunRunning }

// StressTestRun is a snapshot of a run's observable state.
type StressTestRun struct {
	ID           string                `json:"id"`
	Principal    string                `json:"-"`
	Status       RunStatus             `json:"status"`
	Progress     int                   `json:"progress"`
	CurrentPhase string                `json:"currentPhase"`
	Logs         []TestLog             `json:"logs"`
	Snapshots    []PerformanceSnapshot `json:"snapshots"`
	Metrics      *StressTestMetrics    `json:"metrics,omitempty"`
	StartedAt    time.Time             `json:"startedAt"`
	FinishedAt   *time.Time            `json:"finishedAt,omitempty"`
	ElapsedMs    int64                 `json:"elapsedMs"`
}

// ReportConfiguration, ReportPerformance and ReportResources are the fixed
// sections of the downloadable report.
type ReportConfiguration struct {
	SimulatedUsers       uint64 `json:"simulatedUsers"       bson:"simulated_users"`
	ApplicationsTested   uint64 `json:"applicationsTested"   bson:"applications_tested"`
	WorkflowStagesTested uint64 `json:"workflowStagesTested" bson:"workflow_stages_tested"`
}

type ReportPerformance struct {
	LatencyMs             uint64 `json:"latencyMs"             bson:"latency_ms"`
	ThroughputRps         uint64 `json:"throughputRps"         bson:"throughput_rps"`
	SuccessRate           uint64 `json:"successRate"           bson:"success_rate"`
	ErrorRate             uint64 `json:"errorRate"             bson:"error_rate"`
	AverageResponseTimeMs uint64 `json:"averageResponseTimeMs" bson:"average_response_time_ms"`
	PeakLoad              uint64 `json:"peakLoad"              bson:"peak_load"`
	CompletionTimeMs      uint64 `json:"completionTimeMs"      bson:"completion_time_ms"`
}

type ReportResources struct {
	MemoryUsageMb       uint64 `json:"memoryUsageMb"       bson:"memory_usage_mb"`
	BottlenecksDetected uint64 `json:"bottlenecksDetected" bson:"bottlenecks_detected"`
}

// StressTestReport is the downloadable JSON document of a run.
type StressTestReport struct {
	ID              string              `json:"-"               bson:"_id"`
	RunID           string              `json:"-"               bson:"run_id"`
	Principal       string              `json:"-"               bson:"principal"`
	GeneratedAt     time.Time           `json:"-"               bson:"generated_at"`
	TestDate        string              `json:"testDate"        bson:"test_date"`
	Configuration   ReportConfiguration `json:"configuration"   bson:"configuration"`
	Performance     ReportPerformance   `json:"performance"     bson:"performance"`
	Resources       ReportResources     `json:"resources"       bson:"resources"`
	Insights        string              `json:"insights"        bson:"insights"`
	Recommendations string              `json:"recommendations" bson:"recommendations"`
	Logs            []TestLog           `json:"logs"            bson:"logs"`
}

// NewStressTestReport builds the report for a run's metrics and logs.
func NewStressTestReport(m StressTestMetrics, logs []TestLog, now time.Time) StressTestReport {
	if logs == nil {
		logs = []TestLog{}
	}
	return StressTestReport{
		GeneratedAt: now.UTC(),
		TestDate:    now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Configuration: ReportConfiguration{
			SimulatedUsers:       m.SimulatedUsers,
			ApplicationsTested:   m.ApplicationsTested,
			WorkflowStagesTested: m.WorkflowStagesTested,
		},
		Performance: ReportPerformance{
			LatencyMs:             m.LatencyMs,
			ThroughputRps:         m.ThroughputRps,
			SuccessRate:           m.SuccessRate,
			ErrorRate:             m.ErrorRate,
			AverageResponseTimeMs: m.AverageResponseTimeMs,
			PeakLoad:              m.PeakLoad,
			CompletionTimeMs:      m.CompletionTimeMs,
		},
		Resources: ReportResources{
			MemoryUsageMb:       m.MemoryUsageMb,
			BottlenecksDetected: m.BottlenecksDetected,
		},
		Insights:        m.ReportInsights,
		Recommendations: m.OptimizationRecommendations,
		Logs:            logs,
	}
}

// SameResults reports whether both reports describe the same metrics.
func (r StressTestReport) SameResults(o StressTestReport) bool {
	return r.Configuration == o.Configuration &&
		r.Performance == o.Performance &&
		r.Resources == o.Resources &&
		r.Insights == o.Insights &&
		r.Recommendations == o.Recommendations
}

// Filename is the browser download name of the report.
func (r StressTestReport) Filename() string {
	return fmt.Sprintf("stress-test-report-%d.json", r.GeneratedAt.UnixMilli())
}
