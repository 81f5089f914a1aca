package check

import (
	"errors"
	"strings"
	"testing"

	"bisub/internal/services"
)

func TestSymbolsFlagsSortedDistinctMarks(t *testing.T) {
	report := Symbols("1\n00:00:01,000 --> 00:00:02,000\n你好，世界！！\nHello")
	if report.OK() {
		t.Fatal("expected findings")
	}
	if len(report.Findings) != 1 {
		t.Fatalf("unexpected findings %+v", report.Findings)
	}
	line := report.Findings[0].Lines[0]
	if line.Line != 3 || line.SymbolList() != "！ ，" {
		t.Fatalf("unexpected line finding %+v (%q)", line, line.SymbolList())
	}
	want := "seq 1 contains flagged Chinese punctuation:\n  line 3: \"你好，世界！！\" (found: ！ ，)"
	if report.Errors[0] != want {
		t.Fatalf("unexpected error:\n%s", report.Errors[0])
	}
}

func TestSymbolsCleanInputSucceeds(t *testing.T) {
	report := Symbols("1\n00:00:01,000 --> 00:00:02,000\n你好 世界\nHello, world!")
	if !report.OK() {
		t.Fatalf("expected OK, got %v", report.Errors)
	}
}

func TestSymbolsLabelsAndScansInvalidBlocks(t *testing.T) {
	text := "intro（旁白）\n\n07\n不是时间码\n好。"
	report := Symbols(text)
	if len(report.Findings) != 2 {
		t.Fatalf("unexpected findings %+v", report.Findings)
	}
	if report.Findings[0].Label != "block 1" {
		t.Fatalf("expected positional label, got %q", report.Findings[0].Label)
	}
	if report.Findings[1].Label != "seq 07" || report.Findings[1].Lines[0].Line != 3 {
		t.Fatalf("unexpected second finding %+v", report.Findings[1])
	}
}

func TestSymbolsTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("字", 70) + "。"
	report := Symbols("1\n" + long)
	preview := report.Findings[0].Lines[0].Preview
	if preview != strings.Repeat("字", PreviewRunes)+"..." {
		t.Fatalf("unexpected preview %q", preview)
	}
	if got := report.Findings[0].Lines[0].SymbolList(); got != "。" {
		t.Fatalf("symbols from the whole line expected, got %q", got)
	}
}

func TestSymbolsEmptyInputIsNotSuccess(t *testing.T) {
	report := Symbols("\n\n")
	if report.OK() || len(report.Errors) != 1 || report.Errors[0] != msgSymbolsEmptyInput {
		t.Fatalf("unexpected report %+v", report)
	}
	if !errors.Is(report.Err, services.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", report.Err)
	}
}

func TestSymbolsErrMarksFindings(t *testing.T) {
	report := Symbols("1\n00:00:01,000 --> 00:00:02,000\n你好。\nHello")
	if !errors.Is(report.Err, services.ErrValidation) || !services.IsInputError(report.Err) {
		t.Fatalf("expected ErrValidation, got %v", report.Err)
	}
	if err := Symbols("1\n00:00:01,000 --> 00:00:02,000\n你好\nHello").Err; err != nil {
		t.Fatalf("clean scan must have nil Err, got %v", err)
	}
}
