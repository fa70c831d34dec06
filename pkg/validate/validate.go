// Package validate provides reusable input validation functions for CLI flags
// and configuration values. All validators return an error describing the violation
// or nil if the input is acceptable.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// projectNameRe follows docker compose's project naming rules: lowercase
// letters, digits, dashes and underscores, starting with a letter or digit.
var projectNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// safePathSegmentRe matches path segments that are safe to pass as a
// subprocess working directory (alphanumeric, hyphens, underscores, dots).
var safePathSegmentRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ProjectName validates a compose project name.
func ProjectName(s string) error {
	if !projectNameRe.MatchString(s) {
		return fmt.Errorf("invalid project name %q: must be lowercase letters, digits, '-' or '_' and start with a letter or digit", s)
	}
	return nil
}

// SubDir validates a directory that is joined onto the base directory. It
// must be relative and must not escape the base via traversal (../).
func SubDir(s string) error {
	if s == "" {
		return fmt.Errorf("subdirectory must not be empty")
	}

	cleaned := filepath.Clean(s)

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("subdirectory must be relative, got absolute: %s", s)
	}

	for _, part := range strings.Split(cleaned, string(filepath.Separator)) {
		if part == ".." {
			return fmt.Errorf("subdirectory must not contain directory traversal (..): %s", s)
		}
		if part == "." {
			continue
		}
		if !safePathSegmentRe.MatchString(part) {
			return fmt.Errorf("subdirectory segment %q contains disallowed characters", part)
		}
	}

	return nil
}

// BaseDir validates the directory compose commands are run from. It allows
// absolute and relative paths but rejects obviously dangerous patterns.
func BaseDir(s string) error {
	if s == "" {
		return fmt.Errorf("base directory must not be empty")
	}

	cleaned := filepath.Clean(s)

	if strings.ContainsRune(cleaned, 0) {
		return fmt.Errorf("base directory contains null bytes")
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return fmt.Errorf("cannot resolve base directory: %w", err)
	}

	systemDirs := []string{"/", "/etc", "/usr", "/bin", "/sbin", "/var", "/boot", "/dev", "/proc", "/sys"}
	for _, d := range systemDirs {
		if abs == d {
			return fmt.Errorf("base directory must not be a system directory: %s", abs)
		}
	}

	return nil
}
