package errors

import (
	"os"
	"path/filepath"
	"regexp"
	"unicode"
)

// maxPathLength bounds user supplied paths.
const maxPathLength = 4096

// ValidateOutputPath validates the destination of the rendered graph.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name an existing directory
//   - The parent directory must exist
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output path %s is a directory", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "output directory %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output directory %s is not a directory", dir)
	}

	return nil
}

// appLabelRegex matches Django app labels, which must be valid Python
// identifiers.
var appLabelRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateAppLabel validates an app label given on the command line or in
// the configuration file.
func ValidateAppLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidAppLabel, "app label cannot be empty")
	}

	if !appLabelRegex.MatchString(label) {
		return New(ErrCodeInvalidAppLabel, "invalid app label: %q", label)
	}

	return nil
}
