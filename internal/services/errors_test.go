package services_test

import (
	"errors"
	"strings"
	"testing"

	"bisub/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrTimecodeMismatch, "subtitles", "merge", "2 mismatches", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrTimecodeMismatch) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"subtitles", "merge", "2 mismatches"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToUnexpected(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrUnexpected) {
		t.Fatalf("expected unexpected marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestIsInputError(t *testing.T) {
	if !services.IsInputError(services.Wrap(services.ErrEmptyInput, "api", "merge", "blank", nil)) {
		t.Fatal("expected empty input to be classified as input error")
	}
	if services.IsInputError(services.Wrap(services.ErrUnexpected, "api", "merge", "panic", nil)) {
		t.Fatal("expected unexpected error to be classified as service error")
	}
	if !services.IsInputError(services.Wrap(services.ErrStructural, "check", "format", "", nil)) {
		t.Fatal("expected structural error to be classified as input error")
	}
	if !services.IsInputError(services.Wrap(services.ErrValidation, "textio", "decode", "", nil)) {
		t.Fatal("expected undecodable input to be classified as input error")
	}
	if services.IsInputError(services.Wrap(services.ErrConfiguration, "config", "validate", "", nil)) {
		t.Fatal("expected configuration error to be classified as service error")
	}
	if services.IsInputError(nil) {
		t.Fatal("expected nil to be classified as non-input error")
	}
}
