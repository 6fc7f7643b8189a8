// Package analyze provides package loading and record type extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the struct types of a package and the converter
// tags on their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/external)
//   - FieldInfo: describes field name, external key and default
//
// Recognised field tags:
//
//	conv:"key"              external key, or "-" to skip the field
//	default:"literal"       static default, a YAML scalar or null
//	default_factory:"Fn"    default computed by calling Fn()
//	default_self:"Fn"       default computed by calling Fn(value)
package analyze
