// Package metrics declares the Prometheus collectors exported by the service.
// Collectors are registered on the default registry, which the API server
// exposes on the configured metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ontrack"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

// Profile label values for SubmissionsTotal.
const (
	ProfileFound   = "found"
	ProfileMissing = "missing"
)

var (
	// SubmissionsTotal counts scored submissions, labelled by whether the
	// personality profile lookup succeeded.
	SubmissionsTotal = promauto.NewCounterVec( //nolint: gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "survey",
			Name:      "submissions_total",
			Help:      "Total number of scored survey submissions",
		},
		[]string{"profile"},
	)

	// ScoringDuration observes how long a single submission takes to score.
	ScoringDuration = promauto.NewHistogram( //nolint: gochecknoglobals
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "survey",
			Name:      "scoring_duration_seconds",
			Help:      "Duration of scoring a survey submission in seconds",
			Buckets:   DefaultBuckets,
		},
	)

	// RecommendedIndustries observes how many industries a submission yields.
	RecommendedIndustries = promauto.NewHistogram( //nolint: gochecknoglobals
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "survey",
			Name:      "recommended_industries",
			Help:      "Number of recommended industries per submission",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		},
	)
)
