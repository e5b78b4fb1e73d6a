package scip

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "goscip"

// Metrics counts plugin callbacks and engine object captures. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	PluginInvocations *prometheus.CounterVec
	HandlesCaptured   *prometheus.CounterVec
	HandlesReleased   *prometheus.CounterVec
	PluginsRegistered prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PluginInvocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "plugin_invocations_total",
				Help:      "Plugin callbacks invoked by SCIP, by plugin type and callback kind",
			},
			[]string{"plugin", "kind"},
		),
		HandlesCaptured: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "handles_captured_total",
				Help:      "SCIP objects captured by the binding",
			},
			[]string{"object"},
		),
		HandlesReleased: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "handles_released_total",
				Help:      "SCIP objects released by the binding at teardown",
			},
			[]string{"object"},
		),
		PluginsRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "plugins_registered",
				Help:      "Plugin implementations currently reachable from SCIP",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.PluginInvocations, m.HandlesCaptured, m.HandlesReleased, m.PluginsRegistered)
	}
	return m
}

func (m *Metrics) invoked(plugin, kind string) {
	if m != nil {
		m.PluginInvocations.WithLabelValues(plugin, kind).Inc()
	}
}

func (m *Metrics) captured(object string) {
	if m != nil {
		m.HandlesCaptured.WithLabelValues(object).Inc()
	}
}

func (m *Metrics) released(object string) {
	if m != nil {
		m.HandlesReleased.WithLabelValues(object).Inc()
	}
}

func (m *Metrics) pluginAdded() {
	if m != nil {
		m.PluginsRegistered.Inc()
	}
}

func (m *Metrics) pluginFreed() {
	if m != nil {
		m.PluginsRegistered.Dec()
	}
}
