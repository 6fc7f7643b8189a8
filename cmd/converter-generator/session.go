package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"converter-generator/config"
	"converter-generator/internal/analyze"
	"converter-generator/internal/gen"
)

// session holds what every subcommand needs: the override file, the loaded
// packages and a generator configured from the flags.
type session struct {
	overrides *config.File
	graph     *analyze.TypeGraph
	pkgPaths  []string
	generator *gen.Generator
}

// newSession loads the override file and the packages named by args.
// Arguments are directories or import paths and default to ".".
func newSession(args []string, register bool) (*session, error) {
	s := &session{}

	if cfgFile != "" {
		f, err := config.LoadFile(cfgFile)
		if err != nil {
			return nil, err
		}

		diags := f.Validate()
		printDiagnostics(os.Stderr, diags)

		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid config %s: %w", cfgFile, diags.Error())
		}

		s.overrides = f
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	analyzer := analyze.NewAnalyzer()

	patterns, err := resolvePatterns(analyzer, args)
	if err != nil {
		return nil, err
	}

	log.Debug().Strs("patterns", patterns).Msg("loading packages")

	s.graph, err = analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	s.pkgPaths = selectPackages(s.graph, patterns)

	cfg := gen.DefaultGeneratorConfig()
	cfg.OmitIfDefault = omitIfDefault || (s.overrides != nil && s.overrides.OmitIfDefault)
	cfg.Strict = strict
	cfg.Overrides = s.overrides
	cfg.Types = typeNames
	cfg.Register = register

	s.generator = gen.NewGenerator(cfg).WithLogger(log)

	return s, nil
}

// resolvePatterns turns directory arguments into import paths. The analyzer
// runs from the module root of the first directory so that those import
// paths resolve.
func resolvePatterns(analyzer *analyze.Analyzer, args []string) ([]string, error) {
	patterns := make([]string, 0, len(args))

	var root string

	for _, arg := range args {
		dir, recursive := strings.CutSuffix(arg, "/...")
		if !isDir(dir) {
			patterns = append(patterns, arg)
			continue
		}

		mod, err := analyze.FindModule(dir)
		if err != nil {
			return nil, err
		}

		if root == "" {
			root = mod.Root
			analyzer.WithDir(root)
		}

		path, err := mod.ImportPath(dir)
		if err != nil {
			return nil, err
		}

		if recursive {
			path += "/..."
		}

		patterns = append(patterns, path)
	}

	return patterns, nil
}

// selectPackages expands recursive patterns to the loaded packages under
// them that declare record types.
func selectPackages(graph *analyze.TypeGraph, patterns []string) []string {
	var out []string

	for _, p := range patterns {
		prefix, recursive := strings.CutSuffix(p, "/...")
		if !recursive {
			out = append(out, p)
			continue
		}

		for _, path := range slices.Sorted(maps.Keys(graph.Packages)) {
			under := path == prefix || strings.HasPrefix(path, prefix+"/")
			if under && len(graph.Records(path)) > 0 {
				out = append(out, path)
			}
		}
	}

	return out
}

func isDir(p string) bool {
	if !strings.HasPrefix(p, ".") && !strings.HasPrefix(p, "/") {
		return false
	}

	fi, err := os.Stat(p)

	return err == nil && fi.IsDir()
}

// generate runs the generator for every package, printing diagnostics.
func (s *session) generate() ([]*gen.GeneratedFile, error) {
	var files []*gen.GeneratedFile

	for _, path := range s.pkgPaths {
		file, diags, err := s.generator.Generate(s.graph, path)
		printDiagnostics(os.Stderr, diags)

		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}

// plan runs the planner for every package, printing diagnostics.
func (s *session) plan() (map[string][]*gen.TypePlan, error) {
	out := make(map[string][]*gen.TypePlan, len(s.pkgPaths))

	var errs []error

	for _, path := range s.pkgPaths {
		plans, diags, err := s.generator.Plan(s.graph, path)
		printDiagnostics(os.Stderr, diags)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		out[path] = plans
	}

	return out, errors.Join(errs...)
}
