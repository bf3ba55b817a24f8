// Package metrics exposes Prometheus instrumentation for the machine core.
// All methods are safe on a nil *Metrics so components can run without it.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quatton/scitech/pkg/scapi/schemas"
)

const namespace = "scitech"

// Sources of machine updates.
const (
	SourceSimulator = "simulator"
	SourceOperator  = "operator"
)

type Metrics struct {
	registry     *prometheus.Registry
	ticks        prometheus.Counter
	updates      *prometheus.CounterVec
	publishErrs  prometheus.Counter
	dropped      prometheus.Counter
	temperatures *prometheus.GaugeVec
	observers    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulator_ticks_total",
			Help:      "Number of completed simulator ticks.",
		}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_updates_total",
			Help:      "Machine records written and published, by source.",
		}, []string{"source"}),
		publishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed publish attempts to any broadcast backend.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_dropped_total",
			Help:      "Events dropped because an observer's buffer was full.",
		}),
		temperatures: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "machine_temperature_celsius",
			Help:      "Last known temperature per machine.",
		}, []string{"id", "name"}),
		observers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "push_observers",
			Help:      "Currently connected push observers.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ticks, m.updates, m.publishErrs, m.dropped, m.temperatures, m.observers,
	)
	return m
}

// Handler serves this instance's registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ticks.Inc()
}

// Updated records a written machine and its current temperature.
func (m *Metrics) Updated(source string, machine schemas.Machine) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(source).Inc()
	m.temperatures.WithLabelValues(strconv.Itoa(machine.ID), machine.Name).Set(float64(machine.Temperature))
}

// Seen records a machine's temperature without counting an update.
func (m *Metrics) Seen(machine schemas.Machine) {
	if m == nil {
		return
	}
	m.temperatures.WithLabelValues(strconv.Itoa(machine.ID), machine.Name).Set(float64(machine.Temperature))
}

func (m *Metrics) PublishFailed() {
	if m == nil {
		return
	}
	m.publishErrs.Inc()
}

func (m *Metrics) Dropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

func (m *Metrics) Observers(n int) {
	if m == nil {
		return
	}
	m.observers.Set(float64(n))
}
