package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
)

// Values of the outcome label on the extraction counter.
const (
	OutcomeDetected = "detected"
	OutcomeEmpty    = "empty"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry    *prometheus.Registry
	diagnoses   *prometheus.CounterVec
	extractions *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them, together with the
// Go and process collectors, on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		diagnoses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "malaria_diagnoses_total",
			Help: "Total diagnoses by matched rule and tier.",
		}, []string{"rule", "tier"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "malaria_extractions_total",
			Help: "Total text extractions by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.diagnoses,
		m.extractions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) recordDiagnosis(res diagnosis.Result) {
	m.diagnoses.WithLabelValues(res.Rule, string(res.Tier)).Inc()
}

func (m *Metrics) recordExtraction(det extract.Detection) {
	outcome := OutcomeDetected
	if det.Empty() {
		outcome = OutcomeEmpty
	}

	m.extractions.WithLabelValues(outcome).Inc()
}
