package plan

import (
	"fmt"

	"converter-generator/internal/diagnostic"
	"converter-generator/internal/match"
	"converter-generator/override"
	"converter-generator/record"
)

// New plans both directions for r and checks the overrides.
func New(r Record, omitIfDefault bool, overrides override.Set) *Plan {
	return &Plan{
		Type:        r.Name,
		Unstructure: Unstructure(r, omitIfDefault, overrides),
		Structure:   Structure(r, overrides),
		Diagnostics: Check(r, overrides),
	}
}

// Unstructure plans the unstructure direction.
//
// A field gets an omit op only when it has a default and omission is active:
// either its override forces it, or the override inherits and the global
// flag is set.
func Unstructure(r Record, omitIfDefault bool, overrides override.Set) []Field {
	fields := make([]Field, 0, len(r.Fields))

	for _, spec := range r.Fields {
		o := overrides.For(spec.Name)

		op := OpDirect
		if spec.HasDefault() && o.Omits(omitIfDefault) {
			op = omitOp(spec.Default.Kind)
		}

		fields = append(fields, Field{
			Spec:  spec,
			Key:   o.Key(spec.Name),
			Param: spec.ParamName(),
			Op:    op,
		})
	}

	return fields
}

// Structure plans the structure direction.
func Structure(r Record, overrides override.Set) []Field {
	fields := make([]Field, 0, len(r.Fields))

	for _, spec := range r.Fields {
		op := OpRequired
		if spec.HasDefault() {
			op = OpOptional
		}

		fields = append(fields, Field{
			Spec:  spec,
			Key:   overrides.For(spec.Name).Key(spec.Name),
			Param: spec.ParamName(),
			Op:    op,
		})
	}

	return fields
}

func omitOp(kind record.DefaultKind) Op {
	switch kind {
	case record.DefaultFactory:
		return OpOmitFactory
	case record.DefaultSelfFactory:
		return OpOmitSelfFactory
	default:
		return OpOmitStatic
	}
}

// Check validates overrides against the field list of r.
//
// Override keys naming no field are warnings with suggestions; two fields
// sharing an external key is an error; forcing omission on a field without
// a default is an info since it has no effect.
func Check(r Record, overrides override.Set) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	names := make([]string, len(r.Fields))
	byName := make(map[string]record.FieldSpec, len(r.Fields))

	for i, f := range r.Fields {
		names[i] = f.Name
		byName[f.Name] = f
	}

	for _, key := range sortedKeys(overrides) {
		f, ok := byName[key]
		if !ok {
			diags.AddWarning(diagnostic.CodeUnknownOverride,
				fmt.Sprintf("override for %q matches no field", key),
				r.Name, key, match.Suggest(key, names, match.DefaultSuggestThreshold)...)

			continue
		}

		if overrides[key].OmitIfDefault == override.Always && !f.HasDefault() {
			diags.AddInfo(diagnostic.CodeOmitWithoutDefault,
				"omit_if_default has no effect on a field without a default",
				r.Name, key)
		}
	}

	owners := make(map[string]string, len(r.Fields))

	for _, f := range r.Fields {
		key := overrides.For(f.Name).Key(f.Name)
		if prev, ok := owners[key]; ok {
			diags.AddError(diagnostic.CodeRenameCollision,
				fmt.Sprintf("fields %q and %q both use key %q", prev, f.Name, key),
				r.Name, f.Name)

			continue
		}

		owners[key] = f.Name
	}

	return diags
}
