// Package paths resolves the directories the teardown runs in. Compose files
// are located relative to the dhctl executable, never the caller's working
// directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultProject is the compose project name DataHub's quickstart uses.
	DefaultProject = "datahub"
	// DefaultIngestionDir holds the separately composed ingestion environment.
	DefaultIngestionDir = "ingestion"
)

// executable is swapped in tests.
var executable = os.Executable

// ScriptDir returns the directory containing the running executable with
// symlinks resolved.
func ScriptDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("cannot resolve executable path %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

// Resolve returns the absolute base directory. A non-empty override (from
// --dir or the config file) is used as given; otherwise ScriptDir is used.
func Resolve(override string) (string, error) {
	if override == "" {
		return ScriptDir()
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return "", fmt.Errorf("cannot resolve base directory %s: %w", override, err)
	}
	return abs, nil
}

// Ingestion joins the base directory with the ingestion subdirectory,
// defaulting to DefaultIngestionDir.
func Ingestion(base, sub string) string {
	if sub == "" {
		sub = DefaultIngestionDir
	}
	return filepath.Join(base, sub)
}
