// Package config loads converter override configuration from YAML.
//
// Example:
//
//	version: "1"
//	omit_if_default: true
//	strict: false
//	types:
//	  - type: shop.Order
//	    fields:
//	      Count: {omit_if_default: true}
//	      Y: {rename: yy}
//	  - type: shop.Customer
//	    omit_if_default: false
//
// Types are matched by package-qualified name ("example.com/shop.Order") or
// by the short form using the last element of the package path ("shop.Order").
package config
