// Package api defines the wire-format results of the merge and check
// workflows and the converters that build them from core reports. The HTTP
// server and the CLI's --json output both render these types, so their JSON
// shape is a compatibility contract with the browser front end.
//
// # Key Types
//
// CheckResult: outcome of a format or punctuation check, including the
// confetti signal the front end uses to celebrate a clean file.
//
// MergeResponse: merged SubRip text plus ordered diagnostics.
//
// StatusResponse: server liveness payload.
//
// # Design Notes
//
// JSON tags are snake_case to match the existing front end. Errors slices are
// never nil so they always encode as []. Every workflow recovers panics from
// the core and reports them as a single "Unexpected error during ..." entry.
package api
