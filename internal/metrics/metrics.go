// Package metrics provides Prometheus metrics for converter generation and use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Directions used as the "direction" label value.
const (
	DirectionUnstructure = "unstructure"
	DirectionStructure   = "structure"
)

// Collector holds all Prometheus metrics of a converter.
type Collector struct {
	// Generation metrics
	PairsGenerated     *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec

	// Conversion metrics
	Conversions        *prometheus.CounterVec
	ConversionFailures *prometheus.CounterVec
	HookCalls          *prometheus.CounterVec
}

// New creates a collector whose metrics are registered with reg.
// A nil reg creates unregistered metrics.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		PairsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Name:      "pairs_generated_total",
				Help:      "Total number of unstructure/structure pairs generated",
			},
			[]string{"type", "mode"},
		),
		GenerationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Name:      "generation_failures_total",
				Help:      "Total number of failed pair generations",
			},
			[]string{"type"},
		),
		Conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Name:      "record_conversions_total",
				Help:      "Total number of record conversions",
			},
			[]string{"type", "direction"},
		),
		ConversionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Name:      "record_conversion_failures_total",
				Help:      "Total number of failed record conversions",
			},
			[]string{"type", "direction"},
		),
		HookCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Name:      "hook_calls_total",
				Help:      "Total number of user hook invocations",
			},
			[]string{"type", "direction"},
		),
	}
}

// RecordGenerated records a generated pair. mode is "registered" or "lazy".
func (c *Collector) RecordGenerated(typeName, mode string) {
	if c == nil {
		return
	}

	c.PairsGenerated.WithLabelValues(typeName, mode).Inc()
}

// RecordGenerationFailure records a failed generation.
func (c *Collector) RecordGenerationFailure(typeName string) {
	if c == nil {
		return
	}

	c.GenerationFailures.WithLabelValues(typeName).Inc()
}

// RecordConversion records one record conversion and its outcome.
func (c *Collector) RecordConversion(typeName, direction string, err error) {
	if c == nil {
		return
	}

	c.Conversions.WithLabelValues(typeName, direction).Inc()

	if err != nil {
		c.ConversionFailures.WithLabelValues(typeName, direction).Inc()
	}
}

// RecordHook records a hook invocation.
func (c *Collector) RecordHook(typeName, direction string) {
	if c == nil {
		return
	}

	c.HookCalls.WithLabelValues(typeName, direction).Inc()
}
