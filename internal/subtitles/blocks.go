package subtitles

import (
	"iter"
	"strings"
)

// Blocks yields the blank-line separated blocks of raw, each trimmed. CRLF
// line endings are normalized first and whitespace-only lines count as
// separators. The sequence is lazy and can be ranged over repeatedly.
func Blocks(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		normalized := strings.ReplaceAll(raw, "\r\n", "\n")
		var current []string
		flush := func() bool {
			if len(current) == 0 {
				return true
			}
			block := strings.TrimSpace(strings.Join(current, "\n"))
			current = current[:0]
			if block == "" {
				return true
			}
			return yield(block)
		}
		for line := range strings.SplitSeq(normalized, "\n") {
			if strings.TrimSpace(line) == "" {
				if !flush() {
					return
				}
				continue
			}
			current = append(current, line)
		}
		flush()
	}
}

// Lines splits a block into its lines.
func Lines(block string) []string {
	return strings.Split(block, "\n")
}

// IsDigits reports whether value is a non-empty run of ASCII digits.
func IsDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
