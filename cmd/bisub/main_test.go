package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"bisub/internal/services"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "structural check", err: markedFailure(errCheckFailed, services.Wrap(services.ErrStructural, "check", "format", "", nil)), want: exitInputFailure},
		{name: "timecode abort", err: markedFailure(errMergeAborted, services.Wrap(services.ErrTimecodeMismatch, "subtitles", "merge", "", nil)), want: exitInputFailure},
		{name: "undecodable file", err: fmt.Errorf("english input: %w", services.Wrap(services.ErrValidation, "textio", "decode", "", nil)), want: exitInputFailure},
		{name: "unexpected", err: markedFailure(errMergeAborted, services.Wrap(services.ErrUnexpected, "api", "merge", "panic", nil)), want: exitTrouble},
		{name: "missing file", err: fmt.Errorf("read x.srt: %w", fs.ErrNotExist), want: exitTrouble},
		{name: "config", err: services.Wrap(services.ErrConfiguration, "config", "validate", "", nil), want: exitTrouble},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMarkedFailureKeepsBoth(t *testing.T) {
	marker := services.Wrap(services.ErrSequential, "check", "format", "", nil)
	err := markedFailure(errCheckFailed, marker)
	if !errors.Is(err, errCheckFailed) || !errors.Is(err, services.ErrSequential) {
		t.Fatalf("expected both errors in chain, got %v", err)
	}
	if markedFailure(errCheckFailed, nil) != errCheckFailed {
		t.Fatal("nil marker should return the failure unchanged")
	}
}
