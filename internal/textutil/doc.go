// Package textutil provides small text helpers shared across the export
// pipeline: collapsing embedded line breaks before cue bodies are rendered
// and sanitizing room names for use in download filenames.
package textutil
