// Package textutil provides small text helpers shared by the subtitle
// pipelines, the HTTP transport, and the CLI.
//
// The primary use cases are:
//   - Collapsing whitespace runs (including full-width spaces) to one space
//   - Producing length-bounded, rune-safe previews of subtitle lines
//   - Sanitizing filenames and path segments for generated output files
package textutil
