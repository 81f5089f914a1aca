// Package services defines shared utilities consumed by the subtitle
// pipelines and the outer transports.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (empty input, pattern mismatch, timecode mismatch, unexpected) so the
//     HTTP and CLI layers can pick status codes and exit codes uniformly.
//
// Use these helpers when wiring new operations so error classification and
// observability stay consistent across merge and check workflows.
package services
