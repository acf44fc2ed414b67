package simulation

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts simulator events in a private registry.
type Metrics struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	books    prometheus.Gauge
}

// NewMetrics creates counters registered on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "library",
			Subsystem: "simulation",
			Name:      "events_total",
			Help:      "Simulation steps by event and outcome.",
		}, []string{"event", "outcome"}),
		books: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "library",
			Subsystem: "simulation",
			Name:      "books",
			Help:      "Books in the catalog as seen by the simulator.",
		}),
	}
}

func (m *Metrics) observe(e Event, o Outcome) {
	m.events.WithLabelValues(e.String(), string(o)).Inc()
}

func (m *Metrics) bookAdded()   { m.books.Inc() }
func (m *Metrics) bookRemoved() { m.books.Dec() }

// EventCounts gathers the event counter into a map keyed "event/outcome".
func (m *Metrics) EventCounts() (map[string]int, error) {
	mf, err := m.family("library_simulation_events_total")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	if mf != nil {
		for _, metric := range mf.GetMetric() {
			var event, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "event":
					event = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			counts[event+"/"+outcome] = int(metric.GetCounter().GetValue())
		}
	}
	return counts, nil
}

// BookCount gathers the books gauge: the catalog size implied by the adds and
// removes the simulator saw succeed.
func (m *Metrics) BookCount() (int, error) {
	mf, err := m.family("library_simulation_books")
	if err != nil {
		return 0, err
	}
	if mf == nil || len(mf.GetMetric()) == 0 {
		return 0, nil
	}
	return int(mf.GetMetric()[0].GetGauge().GetValue()), nil
}

func (m *Metrics) family(name string) (*dto.MetricFamily, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf, nil
		}
	}
	return nil, nil
}
