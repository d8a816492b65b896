package errors

import (
	"regexp"
	"unicode"
)

// systemNameRegex matches valid built-in system names: lowercase words
// separated by single hyphens.
var systemNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateSystemName validates a system name before registry lookup.
// Names are conservative by design: lowercase alphanumerics and single
// hyphens, at most 64 characters, no control characters.
func ValidateSystemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSystem, "system name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidSystem, "system name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSystem, "system name contains control characters")
		}
	}

	if !systemNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSystem, "invalid system name: %q", name)
	}

	return nil
}

// MaxIterations bounds how many generations a single request may derive.
// Sequence growth is typically exponential, so the cap keeps a mistyped
// iteration count from exhausting memory; the engines themselves impose no
// limit.
const MaxIterations = 64

// ValidateIterations validates a requested iteration count.
// Zero is valid (identity derivation).
func ValidateIterations(n uint) error {
	if n > MaxIterations {
		return New(ErrCodeInvalidIterations, "iteration count %d exceeds maximum %d", n, MaxIterations)
	}
	return nil
}
