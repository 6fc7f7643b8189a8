package converter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"converter-generator/config"
	"converter-generator/internal/metrics"
	"converter-generator/record"
)

// Option configures a Converter. Options apply in order.
type Option func(c *Converter)

// WithOmitIfDefault sets the converter-wide omit-if-default flag.
func WithOmitIfDefault(omit bool) Option {
	return func(c *Converter) {
		c.omitIfDefault = omit
	}
}

// WithStrictOverrides makes override keys that name no field fail generation.
func WithStrictOverrides(strict bool) Option {
	return func(c *Converter) {
		c.strict = strict
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// WithMetrics registers the converter metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Converter) {
		c.metrics = metrics.New(reg)
	}
}

// WithConfig uses the per-type overrides of f. Its file-wide flags can only
// turn omission and strict mode on, whatever the option order.
// Overrides passed to Register win over the file.
func WithConfig(f *config.File) Option {
	return func(c *Converter) {
		c.cfg = f
		if f != nil {
			c.omitIfDefault = c.omitIfDefault || f.OmitIfDefault
			c.strict = f.StrictOr(c.strict)
		}
	}
}

// WithNamespace sets the namespace used to resolve forward references.
// Every generated record type is defined in it under its short and its
// package-qualified name.
func WithNamespace(ns *record.Namespace) Option {
	return func(c *Converter) {
		c.ns = ns
	}
}
