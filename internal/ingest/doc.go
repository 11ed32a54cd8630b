// Package ingest reads recording documents produced by the capture pipeline
// and loads them into the store. Documents are JSON files carrying one
// recording plus its transcription and translation segment streams.
package ingest
