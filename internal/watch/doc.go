// Package watch monitors the import directory for recording documents and
// feeds them to the ingest pipeline. Processed files are renamed in place so
// a restart never re-imports them.
package watch
