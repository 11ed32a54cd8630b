// Package config loads, normalizes, and validates the TOML configuration
// for the lectern daemon and CLI. Path fields are expanded (including "~")
// and the API token may be overridden through the LECTERN_API_TOKEN
// environment variable.
package config
