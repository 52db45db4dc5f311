// SPDX-License-Identifier: MIT

package spk

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	StageDuration   *prometheus.HistogramVec
	Requests        *prometheus.CounterVec
	JacobiRotations prometheus.Histogram
	LloydIterations prometheus.Histogram
	Warnings        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spectral_stage_duration_seconds",
				Help:    "Duration of each pipeline stage in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"stage"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spectral_requests_total",
				Help: "Total number of Compute calls by goal and result",
			},
			[]string{"goal", "result"},
		),
		JacobiRotations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spectral_jacobi_rotations",
				Help:    "Plane rotations applied per Jacobi run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		LloydIterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spectral_lloyd_iterations",
				Help:    "Assignment passes per Lloyd run",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100, 300},
			},
		),
		Warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spectral_warnings_total",
				Help: "Total number of non-fatal warnings by kind",
			},
			[]string{"kind"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.StageDuration, m.Requests, m.JacobiRotations, m.LloydIterations, m.Warnings,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeStage(s Stage, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(s.String()).Observe(d.Seconds())
}

func (m *Metrics) observeRequest(g Goal, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Requests.WithLabelValues(g.String(), result).Inc()
}

func (m *Metrics) observeRotations(n int) {
	if m == nil {
		return
	}
	m.JacobiRotations.Observe(float64(n))
}

func (m *Metrics) observeIterations(n int) {
	if m == nil {
		return
	}
	m.LloydIterations.Observe(float64(n))
}

func (m *Metrics) observeWarning(k WarnKind) {
	if m == nil {
		return
	}
	m.Warnings.WithLabelValues(k.String()).Inc()
}
