package api

import (
	"fmt"

	"bisub/internal/check"
	"bisub/internal/services"
	"bisub/internal/subtitles"
)

// Operation names used in unexpected-error diagnostics and logs.
const (
	OpFormatCheck  = "format check"
	OpSymbolsCheck = "punctuation check"
	OpMerge        = "merge"
)

// CheckFormat validates content and reports the result in wire form.
func CheckFormat(content string) (result CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			message, err := unexpected(OpFormatCheck, r)
			result = CheckResult{Status: StatusError, Errors: []string{message}, Err: err}
		}
	}()
	return FromFormatReport(check.Format(content))
}

// CheckSymbols scans content for flagged punctuation and reports the result
// in wire form.
func CheckSymbols(content string) (result CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			message, err := unexpected(OpSymbolsCheck, r)
			result = CheckResult{Status: StatusInfo, Errors: []string{message}, Err: err}
		}
	}()
	return FromSymbolReport(check.Symbols(content))
}

// Merge interleaves the English and Chinese tracks and reports the result in
// wire form.
func Merge(english, chinese string) (resp MergeResponse) {
	defer func() {
		if r := recover(); r != nil {
			message, err := unexpected(OpMerge, r)
			resp = MergeResponse{Status: StatusError, Errors: []string{message}, Err: err}
		}
	}()
	return FromMergeResult(subtitles.Merge(english, chinese))
}

// unexpected renders a recovered panic as a diagnostic and an
// ErrUnexpected-marked error.
func unexpected(operation string, recovered any) (string, error) {
	err := services.Wrap(services.ErrUnexpected, "api", operation, fmt.Sprint(recovered), nil)
	return fmt.Sprintf("Unexpected error during %s: %v", operation, err), err
}
