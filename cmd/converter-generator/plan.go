package main

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [packages]",
	Short: "Print the conversion plan of every record type",
	Long: `Print, for every record type, each field's external key and the
instruction used in both directions.

Unstructure instructions:
  Direct            always emitted
  OmitStatic        left out when equal to the static default
  OmitFactory       left out when equal to the factory result
  OmitSelfFactory   left out when equal to the self factory result

Structure instructions:
  Required          the key must be present
  Optional          the default applies when the key is absent

Examples:
  converter-generator plan ./store
  converter-generator plan --omit-if-default --type Order ./store`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, err := newSession(args, false)
	if err != nil {
		return err
	}

	plans, err := s.plan()

	w := cmd.OutOrStdout()

	for _, path := range slices.Sorted(maps.Keys(plans)) {
		for _, tp := range plans[path] {
			printPlan(w, tp)
		}
	}

	return err
}
