// Package clipboard copies merged subtitles to, and reads check input from,
// the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable marks clipboard failures, typically a headless Linux box
// without xclip, xsel or wl-clipboard.
var ErrUnavailable = errors.New("system clipboard is unavailable")

// ErrEmpty is returned when asked to copy empty text.
var ErrEmpty = errors.New("refusing to copy empty text")

// Clipboard reads and writes text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the operating system clipboard.
type System struct{}

// ReadAll returns the clipboard text.
func (System) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return text, nil
}

// WriteAll replaces the clipboard text. Empty text is rejected so that a
// failed merge never clears what the user had copied.
func (System) WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard used by tests and headless runs.
type Memory struct {
	Text string
}

func (m *Memory) ReadAll() (string, error) { return m.Text, nil }

func (m *Memory) WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	m.Text = text
	return nil
}
