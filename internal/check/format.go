package check

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bisub/internal/services"
	"bisub/internal/subtitles"
	"bisub/internal/textutil"
	"bisub/internal/timecode"
)

const minBlockLines = 4

const (
	msgFormatEmptyInput = "Input for the format check is empty."
	msgFormatNoBlocks   = "No subtitle blocks were found to check."
)

// Block is a subtitle block that passed every structural check.
type Block struct {
	Seq     int
	StartMS int64
	EndMS   int64
	Text    string
	// Index is the 1-based position of the block in the input.
	Index int
}

// FormatReport is the outcome of Format.
type FormatReport struct {
	Blocks     []Block
	Errors     []string
	BlockCount int
	// StructuralFailures counts blocks rejected by the per-block checks.
	StructuralFailures int
	// Err is nil when the check passed. It carries services.ErrEmptyInput,
	// services.ErrStructural or services.ErrSequential.
	Err error
}

// OK reports whether at least one block was checked and nothing failed.
func (r FormatReport) OK() bool {
	return r.BlockCount > 0 && len(r.Errors) == 0
}

// Format validates text as a bilingual SubRip document.
func Format(text string) FormatReport {
	var report FormatReport
	if textutil.IsBlank(text) {
		report.Errors = []string{msgFormatEmptyInput}
		report.Err = services.Wrap(services.ErrEmptyInput, "check", "format", "blank input", nil)
		return report
	}

	for block := range subtitles.Blocks(text) {
		report.BlockCount++
		parsed, problems := validateBlock(report.BlockCount, block)
		if len(problems) > 0 {
			report.StructuralFailures++
			report.Errors = append(report.Errors, blockReport(report.BlockCount, block, problems))
			continue
		}
		report.Blocks = append(report.Blocks, parsed)
	}

	if report.BlockCount == 0 {
		report.Errors = append(report.Errors, msgFormatNoBlocks)
		report.Err = services.Wrap(services.ErrEmptyInput, "check", "format", "no blocks", nil)
		return report
	}
	if report.StructuralFailures > 0 {
		report.Err = services.Wrap(services.ErrStructural, "check", "format",
			fmt.Sprintf("%d of %d block(s) malformed", report.StructuralFailures, report.BlockCount), nil)
		return report
	}
	if problems := sequenceProblems(report.Blocks); len(problems) > 0 {
		report.Errors = append(report.Errors, problems...)
		report.Err = services.Wrap(services.ErrSequential, "check", "format",
			fmt.Sprintf("%d numbering or overlap problem(s)", len(problems)), nil)
	}
	return report
}

// validateBlock runs every structural check on one block. A failed check does
// not hide the others.
func validateBlock(index int, block string) (Block, []string) {
	lines := subtitles.Lines(block)
	parsed := Block{Text: block, Index: index}
	var problems []string

	if len(lines) < minBlockLines {
		problems = append(problems, fmt.Sprintf("Structure error: expected at least %d lines, found %d.", minBlockLines, len(lines)))
	}

	seqLine := strings.TrimSpace(lines[0])
	seq, err := strconv.Atoi(seqLine)
	if !subtitles.IsDigits(seqLine) || err != nil {
		problems = append(problems, fmt.Sprintf("Sequence error: line 1 \"%s\" is not a number.", lines[0]))
	} else {
		parsed.Seq = seq
	}

	if len(lines) < 2 {
		problems = append(problems, "Timecode format error: line 2 is missing.")
	} else {
		start, end, timingProblems := validateTiming(strings.TrimSpace(lines[1]))
		problems = append(problems, timingProblems...)
		parsed.StartMS, parsed.EndMS = start, end
	}

	if !hasBilingualSplit(lines) {
		problems = append(problems, "Cannot separate the Chinese and English text, or one part is empty.")
	}
	return parsed, problems
}

func validateTiming(line string) (int64, int64, []string) {
	start, end, ok := timecode.SplitRange(line)
	if !ok {
		return 0, 0, []string{fmt.Sprintf("Timecode format error: line 2 \"%s\".", line)}
	}
	var problems []string
	if !timecode.IsStrict(start) {
		problems = append(problems, fmt.Sprintf("Start time must have exactly 3 millisecond digits: \"%s\".", start))
	}
	if !timecode.IsStrict(end) {
		problems = append(problems, fmt.Sprintf("End time must have exactly 3 millisecond digits: \"%s\".", end))
	}
	if len(problems) > 0 {
		return 0, 0, problems
	}
	startMS, _ := timecode.ToMilliseconds(start)
	endMS, _ := timecode.ToMilliseconds(end)
	if startMS > endMS {
		return 0, 0, []string{"Timecode logic error: start time is after end time."}
	}
	return startMS, endMS, nil
}

// hasBilingualSplit reports whether the text lines (index 2 onward) can be
// cut into a non-blank Chinese part followed by a non-blank English part.
// The first workable cut wins.
func hasBilingualSplit(lines []string) bool {
	for k := 2; k <= len(lines)-2; k++ {
		chinese := strings.Join(lines[2:k+1], "\n")
		english := strings.Join(lines[k+1:], "\n")
		if !textutil.IsBlank(chinese) && !textutil.IsBlank(english) {
			return true
		}
	}
	return false
}

func blockReport(index int, block string, problems []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Format mismatch - block %d:\n---\n%s\n---\n  Problems:", index, block)
	for _, problem := range problems {
		b.WriteString("\n    - ")
		b.WriteString(problem)
	}
	return b.String()
}

// sequenceProblems checks numbering and overlap across blocks ordered by seq.
func sequenceProblems(blocks []Block) []string {
	if len(blocks) == 0 {
		return nil
	}
	sorted := slices.Clone(blocks)
	slices.SortStableFunc(sorted, func(a, b Block) int { return cmp.Compare(a.Seq, b.Seq) })

	var problems []string
	if first := sorted[0]; first.Seq != 1 {
		problems = append(problems, fmt.Sprintf(
			"Sequence error: the first subtitle number is not 1 (found %d, block %d).",
			first.Seq, first.Index,
		))
	}
	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.Seq != prev.Seq+1 {
			problems = append(problems, fmt.Sprintf(
				"Sequence gap: numbering jumps from %d (block %d) to %d (block %d).",
				prev.Seq, prev.Index, curr.Seq, curr.Index,
			))
		}
		if prev.EndMS > curr.StartMS {
			problems = append(problems, fmt.Sprintf(
				"Timecode overlap: seq %d (block %d) starts at %s, before seq %d (block %d) ends at %s.",
				curr.Seq, curr.Index, timecode.FormatMilliseconds(curr.StartMS),
				prev.Seq, prev.Index, timecode.FormatMilliseconds(prev.EndMS),
			))
		}
	}
	return problems
}
