// Package config loads, merges and validates configuration for both
// binaries.
//
// Sources are environment variables, command-line flags and an optional
// JSON file, merged in that order with mergo; a field set by an earlier
// source is kept. [GetClientConfig] and [GetServerConfig] project the merged
// result onto what each binary needs and fill defaults.
package config
