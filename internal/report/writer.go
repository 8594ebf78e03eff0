package report

import (
	"os"
	"path/filepath"
)

const fileName = "report.html"

// DefaultPath is the report location: report.html next to the executable.
// If the executable path cannot be resolved, the current directory is used.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return fileName
	}
	return filepath.Join(filepath.Dir(exe), fileName)
}

// Write saves the document at path, replacing any previous report.
func Write(path, doc string) error {
	return os.WriteFile(path, []byte(doc), 0o644)
}
