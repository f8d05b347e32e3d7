// Package metrics defines and registers all custom Prometheus metrics of the
// portal. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Data-fetching metrics ─────────────────────────────────────────────────────

// QueryCacheTotal counts query lookups.
// Labels:
//   - key: the query key (e.g. "apps", "currentUserProfile")
//   - result: "hit" (served from cache) or "miss" (fetched from the backend)
var QueryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "query_cache_total",
		Help:      "Total number of query lookups, labelled by key and result (hit/miss).",
	},
	[]string{"key", "result"},
)

// BackendCallDuration measures one RPC to the backend actor.
// Labels:
//   - op: the backend operation (e.g. "getApps")
//   - outcome: "ok", "rejected" (application error) or "unavailable"
var BackendCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of backend RPC calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// CheckoutSessionsTotal counts checkout session attempts.
// Label:
//   - result: "created", "locked" (another checkout in progress) or "error"
var CheckoutSessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Total number of checkout session attempts, by result.",
	},
	[]string{"result"},
)

// DonationsTotal counts acknowledged donations.
var DonationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_total",
		Help:      "Total number of donations acknowledged.",
	},
)

// ── Wizard metrics ────────────────────────────────────────────────────────────

// WizardTransitionsTotal counts wizard state changes.
// Labels:
//   - kind: "app-wizard" or "blog-generator"
//   - action: "update", "next", "back", "reset", "input", "generate", "submit"
var WizardTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wizard_transitions_total",
		Help:      "Total number of wizard transitions, by wizard and action.",
	},
	[]string{"kind", "action"},
)

// ── Stress test metrics ───────────────────────────────────────────────────────

// StressTestRunsTotal counts finished runs.
// Label:
//   - status: "completed", "failed" or "cancelled"
var StressTestRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stress_test_runs_total",
		Help:      "Total number of stress test runs, by final status.",
	},
	[]string{"status"},
)

// StressTestRunDuration measures a run from dequeue to its final status.
var StressTestRunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stress_test_run_duration_seconds",
		Help:      "Duration of stress test runs on the dispatcher.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 15, 20, 30, 60},
	},
	[]string{"status"},
)

// StressTestQueueDepth tracks the runs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var StressTestQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stress_test_queue_depth",
		Help:      "Current number of runs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
