package config

import (
	"fmt"

	"converter-generator/internal/diagnostic"
)

// Validate checks the file for structural problems. It does not know the
// record types, so unknown field names are reported later by the planner.
func (f *File) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Version != CurrentVersion {
		diags.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "", "")
	}

	seen := make(map[string]bool, len(f.Types))

	for i, t := range f.Types {
		if t.Type == "" {
			diags.AddError(diagnostic.CodeInvalidConfig,
				fmt.Sprintf("types[%d] has no type name", i), "", "")

			continue
		}

		if seen[t.Type] {
			diags.AddError(diagnostic.CodeDuplicateType, "type configured more than once", t.Type, "")
		}

		seen[t.Type] = true

		for name, field := range t.Fields {
			if field.Override().IsNeutral() {
				diags.AddInfo(diagnostic.CodeInvalidConfig, "entry has no effect", t.Type, name)
			}
		}
	}

	return diags
}
