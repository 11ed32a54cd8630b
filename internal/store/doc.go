// Package store persists recordings and their transcription and translation
// segments in SQLite. Segment rows keep their ingest order in a position
// column so reads are deterministic, and timing columns are nullable so
// malformed source data survives ingest and can be counted at export time.
package store
