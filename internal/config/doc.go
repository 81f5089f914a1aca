// Package config loads, normalizes, and validates bisub configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// BISUB_API_TOKEN. Both the CLI and the HTTP server obtain their settings
// through this package so downstream code receives expanded paths, canonical
// log formats, and clear validation errors.
package config
