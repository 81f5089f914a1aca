// Package server exposes the merge and check workflows over HTTP.
//
// Routes accept JSON bodies and return the api package's result types, which
// are the contract the browser front end was built against (including the
// legacy /ajax_check_* paths). A flock-based lock file keeps two servers from
// sharing one state directory, every request is tagged with a uuid request ID
// that flows into the logs, and an optional bearer token guards the workflow
// routes.
package server
