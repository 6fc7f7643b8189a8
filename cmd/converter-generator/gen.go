package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"converter-generator/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [packages]",
	Short: "Write the converter file of every package",
	Long: `Write converters_gen.go into every package holding record types.

The file declares Unstructure<T> and Structure<T> for each record type
and RegisterConverters, which installs them as hooks on a converter.

Examples:
  converter-generator gen ./store
  converter-generator gen --config converters.yaml ./...
  converter-generator gen --output ./out ./store`,
	RunE: runGen,
}

var (
	genOutput     string
	genDebugDir   string
	genNoRegister bool
)

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write files here instead of the package directories")
	genCmd.Flags().StringVar(&genDebugDir, "debug-dir", "", "write unformatted source here when formatting fails")
	genCmd.Flags().BoolVar(&genNoRegister, "no-register", false, "do not emit RegisterConverters")
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := newSession(args, !genNoRegister)
	if err != nil {
		return err
	}

	s.generator = s.generator.WithDebugDir(genDebugDir)

	files, err := s.generate()
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, genOutput); err != nil {
		return err
	}

	for _, f := range files {
		log.Info().Str("file", f.Path(genOutput)).Int("bytes", len(f.Content)).Msg("wrote converters")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) written\n", len(files))

	return nil
}
