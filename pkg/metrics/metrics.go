package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "formintake"

// Outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics tracks form submissions.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	AvatarBytes prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers the collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves g from Handler.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Form submissions by outcome and rejection code",
			},
			[]string{"outcome", "code"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "submission_duration_seconds",
				Help:      "Time spent decoding and validating a submission",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"outcome"},
		),
		AvatarBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "avatar_size_bytes",
				Help:      "Size of accepted avatars",
				Buckets:   prometheus.ExponentialBuckets(1<<10, 4, 8), // 1 KiB .. 16 MiB
			},
		),
		gatherer: g,
	}
}

// Accepted records a successful submission.
func (m *Metrics) Accepted(start time.Time, avatarSize int) {
	m.Submissions.WithLabelValues(OutcomeAccepted, "").Inc()
	m.Duration.WithLabelValues(OutcomeAccepted).Observe(time.Since(start).Seconds())
	m.AvatarBytes.Observe(float64(avatarSize))
}

// Rejected records a client error identified by code.
func (m *Metrics) Rejected(start time.Time, code string) {
	m.Submissions.WithLabelValues(OutcomeRejected, code).Inc()
	m.Duration.WithLabelValues(OutcomeRejected).Observe(time.Since(start).Seconds())
}

// Failed records a server-side failure.
func (m *Metrics) Failed(start time.Time) {
	m.Submissions.WithLabelValues(OutcomeFailed, "").Inc()
	m.Duration.WithLabelValues(OutcomeFailed).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
