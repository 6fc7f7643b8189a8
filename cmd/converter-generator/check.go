package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"converter-generator/internal/gen"
)

var errStale = errors.New("converter files are out of date, run converter-generator gen")

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Fail when a converter file is missing or out of date",
	Long: `Regenerate converters in memory and compare them with the files on disk.
The command exits non-zero and prints a diff when they differ.

Examples:
  converter-generator check ./...
  converter-generator check --config converters.yaml ./store`,
	RunE: runCheck,
}

var (
	checkOutput     string
	checkNoRegister bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "compare with files here instead of the package directories")
	checkCmd.Flags().BoolVar(&checkNoRegister, "no-register", false, "the files were generated without RegisterConverters")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(args, !checkNoRegister)
	if err != nil {
		return err
	}

	files, err := s.generate()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	stale := 0

	for _, f := range files {
		st, err := gen.Check(f, checkOutput)
		if err != nil {
			return err
		}

		if st == nil {
			log.Debug().Str("file", f.Path(checkOutput)).Msg("up to date")
			continue
		}

		stale++

		if st.Missing {
			fmt.Fprintf(w, "%s %s\n", removedColor.Sprint("missing:"), st.Path)
			continue
		}

		fmt.Fprintf(w, "%s %s\n", warningColor.Sprint("stale:"), st.Path)
		printDiff(w, st.Diff)
	}

	if stale > 0 {
		return fmt.Errorf("%w (%d of %d)", errStale, stale, len(files))
	}

	fmt.Fprintf(w, "%d file(s) up to date\n", len(files))

	return nil
}
