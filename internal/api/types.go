package api

// Status values used in results.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInfo    = "info"
)

// Confetti triggers name the front-end control whose check succeeded.
const (
	TriggerFormatCheck  = "checkFormatButtonAjax"
	TriggerSymbolsCheck = "checkSymbolsButtonAjax"
)

// CheckResult is the outcome of a format or punctuation check.
type CheckResult struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	Errors          []string `json:"errors"`
	ShowConfetti    bool     `json:"show_confetti"`
	ConfettiTrigger *string  `json:"confetti_trigger"`
	// Err classifies a failed check with a services marker.
	Err error `json:"-"`
}

// OK reports whether the check passed.
func (r CheckResult) OK() bool {
	return r.Status == StatusSuccess
}

// MergeResponse is the outcome of a merge.
type MergeResponse struct {
	Status       string   `json:"status"`
	MergedOutput string   `json:"merged_output"`
	Errors       []string `json:"errors"`
	// Err classifies an aborted merge with a services marker.
	Err error `json:"-"`
}

// Aborted reports whether the merge produced no output because of an error.
func (r MergeResponse) Aborted() bool {
	return r.Status == StatusError
}

// CheckRequest is the request body of both check endpoints.
type CheckRequest struct {
	Content string `json:"check_content"`
}

// MergeRequest is the request body of the merge endpoint.
type MergeRequest struct {
	English string `json:"eng_content"`
	Chinese string `json:"chs_content"`
}

// StatusResponse reports server liveness.
type StatusResponse struct {
	Running bool   `json:"running"`
	Version string `json:"version"`
	Bind    string `json:"bind"`
}

// ErrorResponse is returned for transport-level failures such as a malformed
// request body.
type ErrorResponse struct {
	Error string `json:"error"`
}
