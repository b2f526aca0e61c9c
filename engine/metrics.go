// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label value for successful evaluations; failures use their Kind.
const outcomeOK = "ok"

// Metrics holds the Prometheus collectors updated by the engine.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linalg_operations_total",
			Help: "Evaluated operations by name and outcome (ok or error kind).",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linalg_operation_duration_seconds",
			Help:    "Wall time of one operation evaluation.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"operation"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.operations, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// observe records one evaluation. Safe on a nil receiver.
func (m *Metrics) observe(op string, kind Kind, d time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if kind != "" {
		outcome = string(kind)
	}
	m.operations.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// Operations exposes the counter vector (for scraping in tests).
func (m *Metrics) Operations() *prometheus.CounterVec { return m.operations }
