package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"  Show: Part 1?  ": "Show- Part 1",
		"a/b\\c":            "a-b-c",
		"<bad>|\"name\"":    "badname",
		"   ":               "",
	}
	for input, want := range tests {
		if got := SanitizeFileName(input); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDerivedFileName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "/tmp/episode.en.srt", want: "episode.en.zh-en.srt"},
		{source: "movie.srt", want: "movie.zh-en.srt"},
		{source: "", want: "merged.zh-en.srt"},
		{source: "-", want: "merged.zh-en.srt"},
	}
	for _, tc := range tests {
		if got := DerivedFileName(tc.source, ".zh-en.srt"); got != tc.want {
			t.Fatalf("DerivedFileName(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}
