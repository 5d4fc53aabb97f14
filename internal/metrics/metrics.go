// Package metrics counts controller activity with Prometheus collectors.
package metrics

import (
	"context"
	"net/http"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors, registered on a private registry.
type Metrics struct {
	Registry    *prometheus.Registry
	Transitions *prometheus.CounterVec
	Operations  *prometheus.CounterVec
	StoreErrors *prometheus.CounterVec
	Items       *prometheus.GaugeVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptable_state_transitions_total",
				Help: "Total number of state transitions",
			},
			[]string{"from", "to"},
		),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptable_operations_total",
				Help: "Total number of applied structure operations",
			},
			[]string{"kind", "op"},
		),
		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptable_store_errors_total",
				Help: "Total number of failed loads and saves",
			},
			[]string{"kind", "op"},
		),
		Items: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jumptable_structure_items",
				Help: "Number of items in a structure after its last operation",
			},
			[]string{"kind"},
		),
	}
	m.Registry.MustRegister(
		m.Transitions,
		m.Operations,
		m.StoreErrors,
		m.Items,
		collectors.NewGoCollector(),
	)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.StateEvent) {
			m.Transitions.WithLabelValues(e.From.String(), e.To.String()).Inc()
		},
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			if !e.Applied {
				return
			}
			m.Operations.WithLabelValues(string(e.Kind), string(e.Op)).Inc()
			m.Items.WithLabelValues(string(e.Kind)).Set(float64(e.Size))
		},
		OnStoreError: func(ctx context.Context, e *domain.StoreEvent) {
			m.StoreErrors.WithLabelValues(string(e.Kind), string(e.Op)).Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
