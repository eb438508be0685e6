package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for code generation.
type Metrics struct {
	Generated prometheus.Counter

	// Failures by reason, e.g. "invalid_birth_date"
	Failures *prometheus.CounterVec

	// Region lookups by resolved code; "NE" counts unmatched names
	RegionLookups *prometheus.CounterVec

	GenerateDuration prometheus.Histogram
}

// New registers the generation metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generated: factory.NewCounter(prometheus.CounterOpts{
			Name: "curp_codes_generated_total",
			Help: "Total number of codes generated successfully",
		}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "curp_generation_failures_total",
			Help: "Total generation failures by reason",
		}, []string{"reason"}),
		RegionLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "curp_region_lookups_total",
			Help: "Region codes of successfully generated codes",
		}, []string{"code"}),
		GenerateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "curp_generate_duration_seconds",
			Help:    "Duration of code generation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementGenerated records a successful generation.
func (m *Metrics) IncrementGenerated() {
	if m != nil {
		m.Generated.Inc()
	}
}

// IncrementFailure records a failed generation.
func (m *Metrics) IncrementFailure(reason string) {
	if m != nil {
		m.Failures.WithLabelValues(reason).Inc()
	}
}

// IncrementRegionLookup records which code a birth state resolved to.
func (m *Metrics) IncrementRegionLookup(code string) {
	if m != nil {
		m.RegionLookups.WithLabelValues(code).Inc()
	}
}

// ObserveGenerate records the duration of a generation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveGenerate(start time.Time) {
	if m != nil {
		m.GenerateDuration.Observe(time.Since(start).Seconds())
	}
}
