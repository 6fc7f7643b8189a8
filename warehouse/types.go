// Package warehouse holds record types that refer to records of another
// package.
package warehouse

import (
	"time"

	"converter-generator/store"
)

// Shipment groups an order with its delivery details.
type Shipment struct {
	ID        uint              `conv:"id"`
	Order     store.Order       `conv:"order"`
	Carrier   string            `conv:"carrier"    default:"post"`
	WeightKg  float64           `conv:"weight_kg"  default:"0.5"`
	Labels    map[string]string `conv:"labels"     default_factory:"NoLabels"`
	ShippedAt *time.Time        `conv:"shipped_at" default:"null"`
	Transit   time.Duration     `conv:"transit"`
}

// NoLabels is the default label set of a Shipment.
func NoLabels() map[string]string {
	return map[string]string{}
}
