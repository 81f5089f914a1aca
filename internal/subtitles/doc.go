// Package subtitles parses SubRip text and merges bilingual tracks.
//
// Raw text is split into blank-line separated blocks by Blocks, turned into a
// seq-keyed Track by ParseTrack, and combined by Merge: the Chinese track is
// cleaned of parenthetical asides, both tracks must agree on the timecode of
// every shared seq, and the output interleaves Chinese above English in
// ascending English seq order. Every function here is pure and safe for
// concurrent use.
package subtitles
