package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Interactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "praxis_interactions_total",
			Help: "Total interactions processed, by outcome",
		},
		[]string{"outcome"}, // completed, blocked, failed
	)

	GovernanceBlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "praxis_governance_blocks_total",
			Help: "Interactions blocked before generation, by reason class",
		},
		[]string{"reason"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "praxis_response_cache_hits_total",
			Help: "Response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "praxis_response_cache_misses_total",
			Help: "Response cache misses",
		},
	)

	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "praxis_response_cache_entries",
			Help: "Current number of cached responses",
		},
	)

	ProviderErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "praxis_provider_errors_total",
			Help: "Generation calls that failed after retries",
		},
	)

	RiskFindings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "praxis_risk_findings_total",
			Help: "Risk findings persisted, by dimension",
		},
		[]string{"dimension"},
	)

	DroppedScans = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "praxis_risk_scans_dropped_total",
			Help: "Risk scans dropped under load (degraded mode)",
		},
	)
)
