package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchTotal     *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastNAV        *prometheus.GaugeVec
	runDuration    prometheus.Histogram
	fundsProcessed prometheus.Gauge
}

// Fetch outcome labels.
const (
	OutcomeHit   = "hit"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundscope_fetch_total",
				Help: "Fetch attempts per strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundscope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastNAV: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundscope_last_nav",
				Help: "Last recorded NAV per fund",
			},
			[]string{"fund"},
		),
		runDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fundscope_refresh_duration_seconds",
				Help:    "Duration of full refresh runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
		),
		fundsProcessed: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fundscope_funds_processed",
				Help: "Funds with computable indicators in the last run",
			},
		),
	}
}

// RecordFetch records one strategy attempt.
func (r *Recorder) RecordFetch(strategy, outcome string) {
	r.fetchTotal.WithLabelValues(strategy, outcome).Inc()
}

// RecordFundRefreshed records the latest NAV for a fund.
func (r *Recorder) RecordFundRefreshed(code string, nav float64) {
	r.lastNAV.WithLabelValues(code).Set(nav)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRunDuration records a full refresh duration in seconds.
func (r *Recorder) RecordRunDuration(seconds float64) {
	r.runDuration.Observe(seconds)
}

// RecordFundsProcessed records how many funds produced indicators.
func (r *Recorder) RecordFundsProcessed(n int) {
	r.fundsProcessed.Set(float64(n))
}
