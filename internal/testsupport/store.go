package testsupport

import (
	"context"
	"testing"

	"lectern/internal/config"
	"lectern/internal/store"
	"lectern/internal/subtitle"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedRecording creates a recording with one transcription and one Spanish
// translation segment.
func SeedRecording(t testing.TB, st *store.Store, id, room string) {
	t.Helper()

	ctx := context.Background()
	if err := st.SaveRecording(ctx, store.Recording{ID: id, Room: room}); err != nil {
		t.Fatalf("store.SaveRecording: %v", err)
	}
	if err := st.AddTranscriptions(ctx, id, []subtitle.TranscriptionSegment{
		{ID: id + "-t1", Start: 0, End: 900, Text: "Good morning"},
	}); err != nil {
		t.Fatalf("store.AddTranscriptions: %v", err)
	}
	if err := st.AddTranslations(ctx, id, []subtitle.TranslationSegment{
		{ID: id + "-o1", Start: 100, End: 950, Text: "Buenos días", Language: "es"},
	}); err != nil {
		t.Fatalf("store.AddTranslations: %v", err)
	}
}
