// Package gen renders converter functions for record types as Go source.
//
// Generation uses text/template + go/format. For every record type of a
// package it emits, into that package:
//
//	func Unstructure<T>(c builder.Unstructurer, v *T) (*generic.Map, error)
//	func Structure<T>(c builder.Structurer, data any) (T, error)
//
// and optionally RegisterConverters, which installs them as hooks of a
// converter.Converter. The generated functions follow the same field plan
// as the functions package builder creates at runtime.
package gen
