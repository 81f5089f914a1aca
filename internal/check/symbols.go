package check

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bisub/internal/services"
	"bisub/internal/subtitles"
	"bisub/internal/textutil"
)

// FlaggedSymbols is the set of full-width punctuation marks Symbols reports.
const FlaggedSymbols = "；，。！“”（）"

// PreviewRunes bounds the line preview in a symbol finding.
const PreviewRunes = 60

const (
	msgSymbolsEmptyInput = "Input for the punctuation check is empty."
	msgSymbolsNoBlocks   = "No subtitle blocks were found for the punctuation check."
)

// LineFinding records the flagged symbols found on one line of a block.
type LineFinding struct {
	// Line is 1-based within the block.
	Line    int
	Preview string
	// Symbols holds distinct marks in code point order.
	Symbols []rune
}

// SymbolList renders the symbols separated by single spaces.
func (f LineFinding) SymbolList() string {
	parts := make([]string, 0, len(f.Symbols))
	for _, r := range f.Symbols {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}

// BlockFinding groups the line findings of one block.
type BlockFinding struct {
	// Label is "seq N" when line 1 is all digits, otherwise "block I".
	Label string
	Index int
	Lines []LineFinding
}

func (f BlockFinding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s contains flagged Chinese punctuation:", f.Label)
	for _, line := range f.Lines {
		fmt.Fprintf(&b, "\n  line %d: \"%s\" (found: %s)", line.Line, line.Preview, line.SymbolList())
	}
	return b.String()
}

// SymbolReport is the outcome of Symbols.
type SymbolReport struct {
	Findings   []BlockFinding
	Errors     []string
	BlockCount int
	// Err is nil when the scan passed. It carries services.ErrEmptyInput
	// or services.ErrValidation.
	Err error
}

// OK reports whether at least one block was scanned and none held flagged
// punctuation.
func (r SymbolReport) OK() bool {
	return r.BlockCount > 0 && len(r.Errors) == 0
}

// Symbols scans every line of every block for FlaggedSymbols, regardless of
// whether the block is structurally valid.
func Symbols(text string) SymbolReport {
	var report SymbolReport
	if textutil.IsBlank(text) {
		report.Errors = []string{msgSymbolsEmptyInput}
		report.Err = services.Wrap(services.ErrEmptyInput, "check", "symbols", "blank input", nil)
		return report
	}
	for block := range subtitles.Blocks(text) {
		report.BlockCount++
		finding, ok := scanBlock(report.BlockCount, block)
		if !ok {
			continue
		}
		report.Findings = append(report.Findings, finding)
		report.Errors = append(report.Errors, finding.String())
	}
	switch {
	case report.BlockCount == 0:
		report.Errors = append(report.Errors, msgSymbolsNoBlocks)
		report.Err = services.Wrap(services.ErrEmptyInput, "check", "symbols", "no blocks", nil)
	case len(report.Findings) > 0:
		report.Err = services.Wrap(services.ErrValidation, "check", "symbols",
			fmt.Sprintf("%d block(s) with flagged punctuation", len(report.Findings)), nil)
	}
	return report
}

func scanBlock(index int, block string) (BlockFinding, bool) {
	lines := subtitles.Lines(block)
	finding := BlockFinding{Label: blockLabel(index, lines[0]), Index: index}
	for i, line := range lines {
		symbols := flaggedIn(line)
		if len(symbols) == 0 {
			continue
		}
		finding.Lines = append(finding.Lines, LineFinding{
			Line:    i + 1,
			Preview: textutil.Preview(line, PreviewRunes),
			Symbols: symbols,
		})
	}
	return finding, len(finding.Lines) > 0
}

func blockLabel(index int, first string) string {
	first = strings.TrimSpace(first)
	if subtitles.IsDigits(first) {
		return "seq " + first
	}
	return "block " + strconv.Itoa(index)
}

func flaggedIn(line string) []rune {
	var found []rune
	for _, r := range line {
		if strings.ContainsRune(FlaggedSymbols, r) && !slices.Contains(found, r) {
			found = append(found, r)
		}
	}
	slices.Sort(found)
	return found
}
