package generate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcomes, used as the "result" label.
const (
	resultSuccess       = "success"
	resultUnfillable    = "unfillable"
	resultInternal      = "internal"
	resultConfiguration = "configuration"
)

var (
	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ravio_attempts_total",
		Help: "Fill attempts by result",
	}, []string{"result"})

	attemptDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ravio_attempt_duration_seconds",
		Help:    "Wall time of a single fill attempt",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ravio_generations_total",
		Help: "Generate calls by outcome",
	}, []string{"outcome"})

	attemptsPerSeed = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ravio_attempts_per_seed",
		Help:    "Attempts needed before a completable seed was found",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	})
)

// WriteMetrics dumps the default registry to path in the node-exporter
// textfile format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
