package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that failed to format to a sidecar
// file in outDir. It is best-effort and never replaces the real output.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep the .go suffix so editors highlight it.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
