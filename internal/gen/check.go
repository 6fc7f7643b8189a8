package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Staleness describes how a generated file on disk differs from fresh output.
type Staleness struct {
	Path    string
	Missing bool   // The file does not exist
	Diff    string // Line diff, empty when Missing
}

func (s *Staleness) String() string {
	if s.Missing {
		return s.Path + ": missing"
	}

	return fmt.Sprintf("%s: out of date\n%s", s.Path, s.Diff)
}

// Check compares file with the copy on disk. A nil result means it is current.
func Check(file *GeneratedFile, outputDir string) (*Staleness, error) {
	path := file.Path(outputDir)

	current, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Staleness{Path: path, Missing: true}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if bytes.Equal(current, file.Content) {
		return nil, nil
	}

	return &Staleness{Path: path, Diff: LineDiff(string(current), string(file.Content))}, nil
}

// LineDiff renders a line-based diff from old to new with "-" and "+" prefixes.
// Unchanged lines are left out.
func LineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf bytes.Buffer

	for _, d := range diffs {
		var prefix string

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}

		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
