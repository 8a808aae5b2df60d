package errors

import (
	"strings"
	"unicode"
)

// ValidateTargetName validates a bump-target package name.
// It rejects names that could be used for path traversal when the name is
// later joined into collection file paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
func ValidateTargetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTarget, "target name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidTarget, "target name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTarget, "target name contains control characters")
		}
	}

	dangerous := []string{"..", "//", "\\", "\x00", "/"}
	for _, pattern := range dangerous {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidTarget, "target name contains invalid sequence: %q", pattern)
		}
	}

	return nil
}
