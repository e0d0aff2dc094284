package errors

import (
	"fmt"
)

// newError wraps a sentinel from package data with context, keeping both the
// sentinel and an optional cause reachable through errors.Is.
func newError(sentinel, cause error, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", sentinel, text, cause)
	}

	return fmt.Errorf("%w: %s", sentinel, text)
}
