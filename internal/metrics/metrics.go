package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the ledger. Methods are
// nil-safe so handlers can run without a registry in tests.
type Metrics struct {
	registry    *prometheus.Registry
	bankingOps  *prometheus.CounterVec
	poolsCreated *prometheus.CounterVec
	cbComputed  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		bankingOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fueleu_banking_operations_total",
			Help: "Banking operations by type and outcome.",
		}, []string{"op", "outcome"}),
		poolsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fueleu_pools_created_total",
			Help: "Pool creation attempts by outcome.",
		}, []string{"outcome"}),
		cbComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_ship_cb_computed_total",
			Help: "Ship compliance balances computed from route data.",
		}),
	}
	reg.MustRegister(
		m.bankingOps,
		m.poolsCreated,
		m.cbComputed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveBankingOp(op, outcome string) {
	if m == nil {
		return
	}
	m.bankingOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) ObservePoolCreation(outcome string) {
	if m == nil {
		return
	}
	m.poolsCreated.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCBComputed() {
	if m == nil {
		return
	}
	m.cbComputed.Inc()
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
