package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidTime is returned by FormatMilliseconds for values that cannot be
// rendered as a timestamp.
const InvalidTime = "invalid time"

const msDigits = 3

var timestampPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d+)`)

// TimeCode is a timestamp split into its clock components.
type TimeCode struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// Parse reads a timestamp from the start of text. The boolean is false when
// text does not begin with a recognizable timestamp.
func Parse(text string) (TimeCode, bool) {
	match := timestampPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return TimeCode{}, false
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis, _ := strconv.Atoi(normalizeFraction(match[4]))
	return TimeCode{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis}, true
}

// normalizeFraction truncates or zero-pads fractional digits to millisecond precision.
func normalizeFraction(digits string) string {
	if len(digits) > msDigits {
		return digits[:msDigits]
	}
	return digits + strings.Repeat("0", msDigits-len(digits))
}

// ToMilliseconds converts a timestamp string into a millisecond offset.
func ToMilliseconds(text string) (int64, bool) {
	tc, ok := Parse(text)
	if !ok {
		return 0, false
	}
	return tc.Milliseconds(), true
}

// FromMilliseconds splits a non-negative millisecond offset into clock components.
func FromMilliseconds(ms int64) (TimeCode, bool) {
	if ms < 0 {
		return TimeCode{}, false
	}
	millis := ms % 1000
	totalSeconds := ms / 1000
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return TimeCode{
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
		Millis:  int(millis),
	}, true
}

// FormatMilliseconds renders ms as HH:MM:SS,mmm, or InvalidTime when ms is negative.
func FormatMilliseconds(ms int64) string {
	tc, ok := FromMilliseconds(ms)
	if !ok {
		return InvalidTime
	}
	return tc.String()
}

// Milliseconds returns the total offset represented by tc.
func (tc TimeCode) Milliseconds() int64 {
	seconds := int64(tc.Hours)*3600 + int64(tc.Minutes)*60 + int64(tc.Seconds)
	return seconds*1000 + int64(tc.Millis)
}

// String renders tc in canonical SubRip form.
func (tc TimeCode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", tc.Hours, tc.Minutes, tc.Seconds, tc.Millis)
}
