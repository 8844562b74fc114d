// Package metrics exposes gate-population metrics for analyzed netlists so
// long-running analysis services can chart circuit composition per run.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the netlist tooling
type Registry struct {
	// Graph population
	GraphNodesTotal prometheus.Gauge
	GraphGates      *prometheus.GaugeVec
	GraphRegisters  prometheus.Gauge

	// Operation counters
	RenamesTotal *prometheus.CounterVec
	ReportsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all netlist metrics registered
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netfault_graph_nodes_total",
			Help: "Total number of nodes in the analyzed graph",
		},
	)

	r.GraphGates = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netfault_graph_gates",
			Help: "Number of gates in the analyzed graph by cell type",
		},
		[]string{"type"},
	)

	r.GraphRegisters = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netfault_graph_registers",
			Help: "Number of register cells in the analyzed graph",
		},
	)

	r.RenamesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netfault_renames_total",
			Help: "Total number of graph rename operations",
		},
		[]string{"status"},
	)

	r.ReportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netfault_reports_total",
			Help: "Total number of emitted graph reports",
		},
		[]string{"report"},
	)

	return r
}

// SetGatePopulation replaces the per-type gate gauges with the given counts
func (r *Registry) SetGatePopulation(counts map[string]int) {
	r.GraphGates.Reset()
	total := 0
	for cellType, n := range counts {
		r.GraphGates.WithLabelValues(cellType).Set(float64(n))
		total += n
	}
	r.GraphNodesTotal.Set(float64(total))
}

// SetRegisterCount sets the register population gauge
func (r *Registry) SetRegisterCount(n int) {
	r.GraphRegisters.Set(float64(n))
}

// RecordRename counts a rename operation outcome
func (r *Registry) RecordRename(status string) {
	r.RenamesTotal.WithLabelValues(status).Inc()
}

// RecordReport counts an emitted report
func (r *Registry) RecordReport(report string) {
	r.ReportsTotal.WithLabelValues(report).Inc()
}

// Handler returns an HTTP handler serving the exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
