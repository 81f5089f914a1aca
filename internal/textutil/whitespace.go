package textutil

import (
	"strings"
	"unicode/utf8"
)

// PreviewEllipsis marks a preview that was cut short.
const PreviewEllipsis = "..."

// CollapseSpaces replaces every run of Unicode whitespace with a single ASCII
// space and trims both ends.
func CollapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Preview returns the first limit runes of value, followed by PreviewEllipsis
// when value was longer. A non-positive limit returns value unchanged.
func Preview(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	count := 0
	for i := range value {
		if count == limit {
			return value[:i] + PreviewEllipsis
		}
		count++
	}
	return value
}

// IsBlank reports whether value contains only whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
