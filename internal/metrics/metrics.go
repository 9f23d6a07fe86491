// Package metrics holds the scoring counters shared by use cases and
// adapters. HTTP request metrics live in the http middleware.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_classifications_total",
			Help: "Total number of intent classifications by source and intent",
		},
		[]string{"source", "intent"},
	)

	scoringRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_scoring_runs_total",
			Help: "Total number of scoring runs by outcome",
		},
		[]string{"outcome"},
	)

	leadsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_scored_total",
			Help: "Total number of leads scored",
		},
	)

	scoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lead_scoring_run_duration_seconds",
			Help:    "Duration of a full scoring run in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

func RecordClassification(source, intent string) {
	leadClassifications.WithLabelValues(source, intent).Inc()
}

func RecordScoringRun(outcome string, leads int, elapsed time.Duration) {
	scoringRuns.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		leadsScored.Add(float64(leads))
		scoringDuration.Observe(elapsed.Seconds())
	}
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
