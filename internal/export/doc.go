// Package export turns a stored recording's segment streams into a
// downloadable caption document. It validates the request, enforces the
// per-request segment ceiling, aligns translations with transcriptions, and
// renders the chosen format.
package export
