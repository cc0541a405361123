package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	AccountsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAccountsRegistered,
			Help: HelpTextAccountsRegistered,
		},
	)

	ProgressUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProgressUpdates,
			Help: HelpTextProgressUpdates,
		},
	)

	ReconciledRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconciledRecords,
			Help: HelpTextReconciledRecords,
		},
		[]string{LabelKind, LabelOutcome},
	)
)
