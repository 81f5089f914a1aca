package textutil

import "testing"

func TestCollapseSpaces(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"  hello   world  ":     "hello world",
		"你好　　世界":      "你好 世界",
		"a\t\tb\nc":             "a b c",
		"00:00:01,000  -->  x":  "00:00:01,000 --> x",
	}
	for input, want := range tests {
		if got := CollapseSpaces(input); got != want {
			t.Fatalf("CollapseSpaces(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPreviewCountsRunes(t *testing.T) {
	if got := Preview("你好世界", 2); got != "你好..." {
		t.Fatalf("unexpected preview: %q", got)
	}
	if got := Preview("你好", 2); got != "你好" {
		t.Fatalf("expected exact-length value untouched, got %q", got)
	}
	if got := Preview("abc", 0); got != "abc" {
		t.Fatalf("expected unlimited preview, got %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(" \n\t") {
		t.Fatal("expected whitespace to be blank")
	}
	if IsBlank(" x ") {
		t.Fatal("expected text to be non-blank")
	}
}
