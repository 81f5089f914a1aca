// Package main hosts the bisub CLI entrypoint and command graph.
//
// The Cobra command tree reads subtitle files (or stdin, or the clipboard),
// runs them through the merge and check workflows in internal/api, and
// renders the outcome as terminal status lines or JSON. The serve command
// exposes the same workflows over HTTP.
//
// Keep this package thin: behaviour belongs in the internal packages and is
// only surfaced here through commands and flags.
package main
