// Package logging configures the process-wide slog logger.
//
// Two output formats are supported: "console" (text, human-oriented) and
// "json" (machine-oriented, RFC3339 UTC timestamps). Components attach their
// identity with WithComponent so every line carries a component attribute.
package logging
