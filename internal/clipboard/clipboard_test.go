package clipboard

import (
	"errors"
	"testing"
)

func TestMemoryClipboard(t *testing.T) {
	var cb Clipboard = &Memory{}
	if err := cb.WriteAll(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := cb.WriteAll("1\n00:00:01,000 --> 00:00:02,000\n你好\nHello"); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := cb.ReadAll()
	if err != nil || got == "" {
		t.Fatalf("ReadAll = %q, %v", got, err)
	}
}

func TestSystemRejectsEmptyText(t *testing.T) {
	if err := (System{}).WriteAll(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
