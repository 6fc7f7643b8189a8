package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"converter-generator/internal/diagnostic"
	"converter-generator/internal/gen"
	"converter-generator/internal/plan"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// printDiagnostics writes one line per diagnostic, errors first.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		c := infoColor

		switch d.Severity {
		case diagnostic.SeverityError:
			c = errorColor
		case diagnostic.SeverityWarning:
			c = warningColor
		}

		fmt.Fprintf(w, "%s %s\n", c.Sprint(d.Severity.String()+":"), d)
	}
}

// printPlan writes the field table of one record type.
func printPlan(w io.Writer, tp *gen.TypePlan) {
	omit := "off"
	if tp.OmitIfDefault {
		omit = "on"
	}

	headerColor.Fprintf(w, "%s", tp.Type.ID)
	fmt.Fprintf(w, " (omit_if_default %s)\n", omit)

	for i, u := range tp.Plan.Unstructure {
		s := tp.Plan.Structure[i]
		f := tp.Type.Fields[i]

		key := u.Key
		if key != u.Spec.Name {
			key = fmt.Sprintf("%s <- %s", key, u.Spec.Name)
		}

		fmt.Fprintf(w, "  %-28s %-12s %-18s %s\n", key, f.Name, opColor(u.Op).Sprint(u.Op), opColor(s.Op).Sprint(s.Op))
	}
}

func opColor(op plan.Op) *color.Color {
	switch {
	case op.Omits():
		return warningColor
	case op == plan.OpRequired:
		return headerColor
	default:
		return color.New(color.Reset)
	}
}

// printDiff colors the lines of a diff produced by gen.LineDiff.
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			addedColor.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			removedColor.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
