package subtitles

import (
	"fmt"
	"strings"

	"bisub/internal/services"
	"bisub/internal/textutil"
)

const (
	msgEmptyInput        = "English and Chinese subtitle content must both be non-empty."
	msgEnglishUnparsed   = "Unable to parse the English subtitles; check the format."
	msgChineseUnparsed   = "Unable to parse the Chinese subtitles; check the format."
	msgTimecodeAbort     = "Timecode check failed; merge aborted."
	msgTranslationUnused = "Warning: Chinese subtitles were provided, but none of their content could be matched to an English entry (seq numbers may differ, or the text was empty after cleanup)."
	msgEmptyResult       = "Merge result is empty (no usable content after processing, or no matching entries)."
)

// MergedEntry is one cue of the bilingual output.
type MergedEntry struct {
	Seq      int
	Timecode string
	Text     string
}

// MergeResult is the outcome of Merge. Err is nil unless the merge was
// aborted; Diagnostics may hold advisories even when it was not.
type MergeResult struct {
	Entries     []MergedEntry
	Output      string
	Diagnostics []string
	Err         error
}

// Aborted reports whether a precondition stopped the merge.
func (r MergeResult) Aborted() bool {
	return r.Err != nil
}

// Merge parses an English and a Chinese SubRip track and interleaves them.
//
// Preconditions are checked phase by phase and the first failing phase ends
// the merge: both inputs must be non-blank, both must parse to at least one
// entry, and every seq present in both tracks must carry the same timecode.
// Within the timecode phase every mismatch is reported.
func Merge(english, chinese string) MergeResult {
	if textutil.IsBlank(english) || textutil.IsBlank(chinese) {
		return MergeResult{
			Diagnostics: []string{msgEmptyInput},
			Err:         services.Wrap(services.ErrEmptyInput, "subtitles", "merge", "blank input", nil),
		}
	}

	en := ParseTrack(english)
	zh := ParseTrack(chinese)
	var diagnostics []string
	if en.Len() == 0 {
		diagnostics = append(diagnostics, msgEnglishUnparsed)
	}
	if zh.Len() == 0 {
		diagnostics = append(diagnostics, msgChineseUnparsed)
	}
	if len(diagnostics) > 0 {
		return MergeResult{
			Diagnostics: diagnostics,
			Err:         services.Wrap(services.ErrPatternMismatch, "subtitles", "merge", "no subtitle entries parsed", nil),
		}
	}

	zh = zh.MapText(StripAsides)

	if mismatches := CheckTimecodes(en, zh); len(mismatches) > 0 {
		return MergeResult{
			Diagnostics: append([]string{msgTimecodeAbort}, mismatches...),
			Err: services.Wrap(services.ErrTimecodeMismatch, "subtitles", "merge",
				fmt.Sprintf("%d shared seq(s) disagree", len(mismatches)), nil),
		}
	}

	entries := Interleave(en, zh)
	result := MergeResult{Entries: entries, Output: FormatSRT(entries)}
	if !translationUsed(en, zh) {
		result.Diagnostics = append(result.Diagnostics, msgTranslationUnused)
	}
	if result.Output == "" && len(result.Diagnostics) == 0 {
		result.Diagnostics = append(result.Diagnostics, msgEmptyResult)
	}
	return result
}

// CheckTimecodes compares the timecode ranges of every seq present in both
// tracks and returns one diagnostic per mismatch, in ascending seq order.
func CheckTimecodes(en, zh Track) []string {
	var mismatches []string
	for _, seq := range en.Seqs() {
		zhEntry, ok := zh.Get(seq)
		if !ok {
			continue
		}
		enEntry, _ := en.Get(seq)
		if normalizeRange(zhEntry.Timecode) != normalizeRange(enEntry.Timecode) {
			mismatches = append(mismatches, fmt.Sprintf(
				"Error: seq %d - Chinese timecode %q does not match English timecode %q.",
				seq, zhEntry.Timecode, enEntry.Timecode,
			))
		}
	}
	return mismatches
}

func normalizeRange(value string) string {
	return strings.ReplaceAll(textutil.CollapseSpaces(value), ".", ",")
}

// Interleave walks the English track in ascending seq order and places the
// Chinese text for the same seq above the English text. English-only entries
// are kept when no Chinese text is available. Timecodes always come from the
// English track.
func Interleave(en, zh Track) []MergedEntry {
	seqs := en.Seqs()
	merged := make([]MergedEntry, 0, len(seqs))
	for _, seq := range seqs {
		enEntry, _ := en.Get(seq)
		entry := MergedEntry{Seq: seq, Timecode: enEntry.Timecode, Text: enEntry.Text}
		if zhEntry, ok := zh.Get(seq); ok && !textutil.IsBlank(zhEntry.Text) {
			entry.Text = zhEntry.Text + "\n" + enEntry.Text
		}
		merged = append(merged, entry)
	}
	return merged
}

func translationUsed(en, zh Track) bool {
	for _, seq := range en.Seqs() {
		if zhEntry, ok := zh.Get(seq); ok && !textutil.IsBlank(zhEntry.Text) {
			return true
		}
	}
	return false
}
