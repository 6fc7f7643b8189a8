// Package converter is a registry of generated unstructure and structure
// functions.
//
// A Converter turns Go values into generic data made of nil, bool, numbers,
// strings, []any, map[string]any and *generic.Map, and back. Struct types are
// records: their functions are generated by package builder on registration,
// or lazily on first use, and cached for the life of the converter.
//
//	c := converter.New(converter.WithOmitIfDefault(true))
//	err := converter.Register[Order](c, override.Set{
//		"Y": override.New(override.Rename("yy")),
//	})
//	data, err := c.Unstructure(order)
//	order, err := converter.StructureAs[Order](c, data)
//
// Every function generated for a record calls back into the converter for
// its field values, so nested records, slices and maps of records convert
// recursively.
package converter
