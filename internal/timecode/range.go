package timecode

import (
	"regexp"
	"strings"
)

var (
	rangePattern  = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}[,.]\d+)\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d+)$`)
	strictPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3}$`)
)

// SplitRange splits a "start --> end" line into its two timestamps. The whole
// trimmed line must be a range; either side may use a comma or period and any
// number of fractional digits.
func SplitRange(line string) (start, end string, ok bool) {
	match := rangePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// IsRange reports whether line is a complete timestamp range.
func IsRange(line string) bool {
	_, _, ok := SplitRange(line)
	return ok
}

// IsStrict reports whether ts has exactly three fractional digits once a
// period separator is treated as a comma.
func IsStrict(ts string) bool {
	return strictPattern.MatchString(strings.ReplaceAll(strings.TrimSpace(ts), ".", ","))
}
