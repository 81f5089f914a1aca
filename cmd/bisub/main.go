package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bisub/internal/services"
)

var version = "dev"

// Exit codes: the submitted subtitles failed a check or merge, or the
// command itself could not run.
const (
	exitInputFailure = 1
	exitTrouble      = 2
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if services.IsInputError(err) {
		return exitInputFailure
	}
	return exitTrouble
}

// markedFailure joins a command failure with the marker-carrying result
// error so that exitCode can classify it.
func markedFailure(failure, marker error) error {
	if marker == nil {
		return failure
	}
	return fmt.Errorf("%w: %w", failure, marker)
}
