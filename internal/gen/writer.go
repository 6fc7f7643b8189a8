package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Path returns where the file is written. An empty outputDir means the
// package directory.
func (f *GeneratedFile) Path(outputDir string) string {
	if outputDir == "" {
		outputDir = f.Dir
	}

	return filepath.Join(outputDir, f.Filename)
}

// WriteFiles writes all generated files. Each file goes to outputDir, or
// to its package directory when outputDir is empty.
// Missing directories are created.
func WriteFiles(files []*GeneratedFile, outputDir string) error {
	for _, file := range files {
		outputPath := file.Path(outputDir)

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
