// Package metrics records run telemetry in a Prometheus registry and writes it
// out in the text exposition format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/pvadjust/internal/sysmon"
)

const namespace = "pvadjust"

// Metrics holds the collectors for one run. Each instance owns its registry,
// so several can coexist in tests.
type Metrics struct {
	registry       *prometheus.Registry
	corrections    *prometheus.CounterVec
	adjusted       *prometheus.CounterVec
	belowThreshold *prometheus.GaugeVec
	figures        *prometheus.CounterVec
	systemCPU      prometheus.Gauge
	systemMemory   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them together with the Go
// runtime collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrections_total",
			Help:      "Number of correction passes run, by method.",
		}, []string{"method"}),
		adjusted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pvalues_adjusted_total",
			Help:      "Number of p-values adjusted, by method.",
		}, []string{"method"}),
		belowThreshold: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "below_threshold",
			Help:      "Adjusted p-values below the plotted significance threshold, by method.",
		}, []string{"method"}),
		figures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "figures_rendered_total",
			Help:      "Figures rendered, by target (terminal or file format).",
		}, []string{"target"}),
		systemCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_cpu_percent",
			Help:      "System-wide CPU usage sampled at the end of the run.",
		}),
		systemMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_memory_percent",
			Help:      "System-wide memory usage sampled at the end of the run.",
		}),
	}
	m.registry.MustRegister(
		m.corrections,
		m.adjusted,
		m.belowThreshold,
		m.figures,
		m.systemCPU,
		m.systemMemory,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveCorrection records one correction pass. alpha only feeds the
// below_threshold gauge.
func (m *Metrics) ObserveCorrection(method string, adjusted []float64, alpha float64) {
	m.corrections.WithLabelValues(method).Inc()
	m.adjusted.WithLabelValues(method).Add(float64(len(adjusted)))

	below := 0
	for _, v := range adjusted {
		if v < alpha {
			below++
		}
	}
	m.belowThreshold.WithLabelValues(method).Set(float64(below))
}

// ObserveFigure records a rendered figure.
func (m *Metrics) ObserveFigure(target string) {
	m.figures.WithLabelValues(target).Inc()
}

// ObserveSystem records a host resource snapshot.
func (m *Metrics) ObserveSystem(s sysmon.Stats) {
	m.systemCPU.Set(s.CPUPercent)
	m.systemMemory.Set(s.MemPercent)
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
