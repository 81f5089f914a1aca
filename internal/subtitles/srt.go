package subtitles

import (
	"strconv"
	"strings"

	"bisub/internal/timecode"
)

// ParseTrack builds a Track from raw SubRip text.
//
// A cue starts with a block whose first line is a sequence number and whose
// second line is a timecode range; the remaining lines are its text. A lone
// sequence number followed by a block that opens with the timecode range is
// accepted as the same header split by a blank line. A following block that does not start with a sequence number continues that
// text. Cues with a malformed header are skipped silently along with their
// continuation blocks, and cues whose text is blank are omitted.
func ParseTrack(raw string) Track {
	track := NewTrack()
	var (
		current Entry
		parts   []string
		open    bool
	)
	commit := func() {
		if !open {
			return
		}
		current.Text = strings.TrimSpace(strings.Join(parts, "\n\n"))
		if current.Text != "" {
			track.Set(current)
		}
		open = false
		parts = nil
	}

	pending := -1
	for block := range Blocks(raw) {
		lines := Lines(block)
		first := strings.TrimSpace(lines[0])
		if pending >= 0 && timecode.IsRange(first) {
			current = Entry{Seq: pending, Timecode: strings.ReplaceAll(first, ".", ",")}
			parts = []string{strings.Join(lines[1:], "\n")}
			open = true
			pending = -1
			continue
		}
		pending = -1
		if !IsDigits(first) {
			if open {
				parts = append(parts, block)
			}
			continue
		}
		commit()

		seq, err := strconv.Atoi(first)
		if err != nil {
			continue
		}
		if len(lines) < 2 {
			pending = seq
			continue
		}
		rangeLine := strings.TrimSpace(lines[1])
		if !timecode.IsRange(rangeLine) {
			continue
		}
		current = Entry{Seq: seq, Timecode: strings.ReplaceAll(rangeLine, ".", ",")}
		parts = []string{strings.Join(lines[2:], "\n")}
		open = true
	}
	commit()
	return track
}

// FormatSRT renders merged entries as SubRip text: seq, timecode, text and a
// blank separator per entry, with trailing whitespace removed. Seq is written
// as a plain decimal, so a source number such as "01" comes out as "1".
func FormatSRT(entries []MergedEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(strconv.Itoa(entry.Seq))
		b.WriteByte('\n')
		b.WriteString(entry.Timecode)
		b.WriteByte('\n')
		b.WriteString(entry.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
