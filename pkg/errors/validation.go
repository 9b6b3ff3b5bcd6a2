package errors

import (
	"strings"
	"unicode"
)

// ValidateSize checks a requested number of posts.
func ValidateSize(n int) error {
	if n < 2 {
		return New(ErrCodeInvalidInput, "size must be at least 2, got %d", n)
	}
	return nil
}

// ValidateCostRange checks generator bounds. Costs must be positive and the
// range non-empty.
func ValidateCostRange(lo, hi int64) error {
	if lo < 1 {
		return New(ErrCodeInvalidInput, "min cost must be positive, got %d", lo)
	}
	if hi < lo {
		return New(ErrCodeInvalidInput, "max cost %d is below min cost %d", hi, lo)
	}
	return nil
}

// ValidateLimit checks a size ceiling. Zero means unlimited.
func ValidateLimit(name string, limit int) error {
	if limit < 0 {
		return New(ErrCodeInvalidInput, "%s limit cannot be negative, got %d", name, limit)
	}
	if limit == 1 {
		return New(ErrCodeInvalidInput, "%s limit of 1 excludes every matrix", name)
	}
	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormat checks an output format against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (must be one of %s)", format, strings.Join(allowed, ", "))
}
