package subtitles

import (
	"maps"
	"slices"
)

// Entry is one parsed subtitle cue.
type Entry struct {
	Seq      int
	Timecode string
	Text     string
}

// Track maps sequence numbers to entries. Map iteration order is never used;
// callers that need ordering go through Seqs.
type Track struct {
	entries map[int]Entry
}

// NewTrack returns an empty track.
func NewTrack() Track {
	return Track{entries: make(map[int]Entry)}
}

// Len returns the number of entries.
func (t Track) Len() int {
	return len(t.entries)
}

// Get returns the entry stored for seq.
func (t Track) Get(seq int) (Entry, bool) {
	entry, ok := t.entries[seq]
	return entry, ok
}

// Set stores entry under its seq, replacing any previous entry.
func (t *Track) Set(entry Entry) {
	if t.entries == nil {
		t.entries = make(map[int]Entry)
	}
	t.entries[entry.Seq] = entry
}

// Seqs returns every seq in ascending order.
func (t Track) Seqs() []int {
	return slices.Sorted(maps.Keys(t.entries))
}

// MapText returns a copy of t with fn applied to every entry's text.
func (t Track) MapText(fn func(string) string) Track {
	out := Track{entries: make(map[int]Entry, len(t.entries))}
	for seq, entry := range t.entries {
		entry.Text = fn(entry.Text)
		out.entries[seq] = entry
	}
	return out
}
