// Package language holds the registry of caption languages the capture
// agent offers, plus normalization and display-name helpers for arbitrary
// language codes encountered in stored translations.
package language
