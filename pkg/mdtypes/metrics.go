/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Lookup kinds, used as metrics label values
const (
	lookupReference = "reference"
	lookupValueType = "value_type"
)

// Registry metrics: lookups counter and cache sizes.
type metrics struct {
	lookups *prometheus.CounterVec
	sizes   []prometheus.Collector
}

func newMetrics(namespace, registry string, sizes map[string]func() int) *metrics {
	labels := prometheus.Labels{"registry": registry}
	m := &metrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "lookups_total",
				Help:        "Total number of reference and value type lookups by result",
				ConstLabels: labels,
			},
			[]string{"kind", "result"},
		),
	}
	for name, size := range sizes {
		m.sizes = append(m.sizes, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        name + "_cached",
				Help:        "Number of cached " + name,
				ConstLabels: labels,
			},
			func() float64 { return float64(size()) },
		))
	}
	return m
}

func (m *metrics) lookup(kind, result string) {
	m.lookups.WithLabelValues(kind, result).Inc()
}

// Describe implements prometheus.Collector
func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	m.lookups.Describe(ch)
	for _, s := range m.sizes {
		s.Describe(ch)
	}
}

// Collect implements prometheus.Collector
func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	m.lookups.Collect(ch)
	for _, s := range m.sizes {
		s.Collect(ch)
	}
}
