// Package timecode converts SubRip timestamps to and from millisecond offsets.
//
// Timestamps are accepted as HH:MM:SS followed by a comma or period and any
// number of fractional digits. Fractions are normalized to exactly three
// digits (truncated or right-padded) before they are read as milliseconds, so
// "00:00:01,5" and "00:00:01.500" describe the same instant. Formatting always
// produces the canonical HH:MM:SS,mmm form.
package timecode
