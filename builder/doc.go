// Package builder generates the pair of conversion functions for a record
// type: unstructure (instance → *generic.Map) and structure
// (generic map → instance).
//
// Generation happens once per type and configuration. Each field is planned
// into a small instruction (see internal/plan) which is compiled into a
// closure capturing everything it needs: the field index, the external key,
// the default value or factory, the resolved field type. The returned
// function runs those closures in declaration order and never inspects the
// descriptor again.
//
// Nested values are converted through the Unstructurer and Structurer passed
// at build time, typically the converter registry that owns the functions.
//
//	d, _ := record.Of[Order](record.WithDefault("Count", 0))
//	pair, err := builder.Build(d, conv, ns, true, override.Set{
//		"Y": override.New(override.Rename("yy")),
//	})
//	m, err := pair.Unstructure(order)
//	v, err := pair.Structure(m, d.Type)
package builder
