// Package check validates bilingual SubRip text without modifying it.
//
// Format verifies each block's structure and timing independently, then
// (only when every block is structurally sound) verifies numbering and
// overlap across blocks. Symbols flags full-width Chinese punctuation line by
// line. Both collect every problem they find rather than stopping at the
// first, and both are pure functions safe for concurrent use.
package check
