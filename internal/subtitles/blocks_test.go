package subtitles

import (
	"slices"
	"testing"
)

func collect(raw string) []string {
	return slices.Collect(Blocks(raw))
}

func TestBlocksSplitsOnBlankLines(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld"
	got := collect(raw)
	want := []string{
		"1\n00:00:01,000 --> 00:00:02,000\nHello",
		"2\n00:00:03,000 --> 00:00:04,000\nWorld",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected blocks: %q", got)
	}
}

func TestBlocksBoundaries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "crlf", raw: "1\r\nA\r\n\r\n2\r\nB\r\n", want: []string{"1\nA", "2\nB"}},
		{name: "no trailing blank", raw: "1\nA", want: []string{"1\nA"}},
		{name: "many blank lines", raw: "\n\n\n1\nA\n\n\n\n2\nB\n\n\n", want: []string{"1\nA", "2\nB"}},
		{name: "whitespace-only separator", raw: "1\nA\n   \t\n2\nB", want: []string{"1\nA", "2\nB"}},
		{name: "trimmed edges", raw: "  1\nA  \n\n", want: []string{"1\nA"}},
		{name: "blank input", raw: " \n\n\t", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := collect(tc.raw); !slices.Equal(got, tc.want) {
				t.Fatalf("unexpected blocks: %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBlocksIsRestartable(t *testing.T) {
	seq := Blocks("1\nA\n\n2\nB")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) || len(first) != 2 {
		t.Fatalf("expected identical passes, got %q and %q", first, second)
	}
}

func TestBlocksStopsEarly(t *testing.T) {
	count := 0
	for range Blocks("1\nA\n\n2\nB\n\n3\nC") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected to stop after 2 blocks, got %d", count)
	}
}

func TestIsDigits(t *testing.T) {
	for value, want := range map[string]bool{"12": true, "0": true, "": false, "1a": false, " 1": false, "１": false} {
		if got := IsDigits(value); got != want {
			t.Fatalf("IsDigits(%q) = %v, want %v", value, got, want)
		}
	}
}
