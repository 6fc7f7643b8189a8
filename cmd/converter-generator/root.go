package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile       string
	omitIfDefault bool
	strict        bool
	typeNames     []string
	verbose       bool
	noColor       bool

	log = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "converter-generator",
	Short: "Generate structure and unstructure functions for Go record types",
	Long: `converter-generator writes functions converting tagged Go structs to and
from ordered generic maps.

Struct tags:
  conv:"name"               external key ("-" skips the field)
  default:"value"           static default, makes the field optional
  default_factory:"Fn"      default computed by Fn()
  default_self:"Fn"         default computed by Fn(instance)

Examples:
  converter-generator plan ./store
  converter-generator gen --config converters.yaml ./store ./warehouse
  converter-generator check ./...`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "override file (YAML)")
	flags.BoolVar(&omitIfDefault, "omit-if-default", false, "leave fields equal to their default out of the output")
	flags.BoolVar(&strict, "strict", false, "fail on overrides that match no field")
	flags.StringSliceVarP(&typeNames, "type", "t", nil, "only handle these record types")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setupOutput configures colors and the logger, both on stderr.
func setupOutput(cmd *cobra.Command, _ []string) error {
	fd := os.Stderr.Fd()
	color.NoColor = noColor || (!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().
		Logger()

	return nil
}
