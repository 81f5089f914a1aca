package api

import (
	"bisub/internal/check"
	"bisub/internal/subtitles"
)

const (
	msgFormatPassed  = "All checked subtitle blocks passed the format, numbering and timing checks!"
	msgSymbolsPassed = "No flagged Chinese punctuation was found."
)

// FromFormatReport converts a format report into a CheckResult.
func FromFormatReport(report check.FormatReport) CheckResult {
	if report.OK() {
		return passed(msgFormatPassed, TriggerFormatCheck)
	}
	return CheckResult{Status: StatusError, Errors: nonNil(report.Errors), Err: report.Err}
}

// FromSymbolReport converts a punctuation report into a CheckResult. Findings
// are informational, so a failed scan reports StatusInfo.
func FromSymbolReport(report check.SymbolReport) CheckResult {
	if report.OK() {
		return passed(msgSymbolsPassed, TriggerSymbolsCheck)
	}
	return CheckResult{Status: StatusInfo, Errors: nonNil(report.Errors), Err: report.Err}
}

// FromMergeResult converts a merge result into a MergeResponse.
func FromMergeResult(result subtitles.MergeResult) MergeResponse {
	resp := MergeResponse{
		Status:       StatusSuccess,
		MergedOutput: result.Output,
		Errors:       nonNil(result.Diagnostics),
		Err:          result.Err,
	}
	switch {
	case result.Aborted():
		resp.Status = StatusError
		resp.MergedOutput = ""
	case len(result.Diagnostics) > 0:
		resp.Status = StatusInfo
	}
	return resp
}

func passed(message, trigger string) CheckResult {
	return CheckResult{
		Status:          StatusSuccess,
		Message:         message,
		Errors:          []string{},
		ShowConfetti:    true,
		ConfettiTrigger: &trigger,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
