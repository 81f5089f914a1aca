package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrPatternMismatch  = errors.New("pattern mismatch")
	ErrTimecodeMismatch = errors.New("timecode mismatch")
	ErrStructural       = errors.New("structural error")
	ErrSequential       = errors.New("sequential error")
	ErrUnexpected       = errors.New("unexpected error")
	ErrConfiguration    = errors.New("configuration error")
	ErrValidation       = errors.New("validation error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrUnexpected
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsInputError reports whether err was caused by the submitted text rather
// than by the service itself. Undecodable input counts as ErrValidation.
func IsInputError(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrPatternMismatch),
		errors.Is(err, ErrTimecodeMismatch),
		errors.Is(err, ErrStructural),
		errors.Is(err, ErrSequential),
		errors.Is(err, ErrValidation):
		return true
	default:
		return false
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
