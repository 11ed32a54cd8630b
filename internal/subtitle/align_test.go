package subtitle

import (
	"math"
	"testing"
)

func TestAlignPairsNearestTranscription(t *testing.T) {
	transcriptions := []TranscriptionSegment{
		{ID: "t1", Start: 0, End: 900, Text: "Good morning everyone"},
		{ID: "t2", Start: 2000, End: 2900, Text: "Please open your books"},
	}
	translations := []TranslationSegment{
		{ID: "o1", Start: 100, End: 950, Text: "Buenos días a todos", Language: "es"},
		{ID: "o2", Start: 2100, End: 3000, Text: "Abran sus libros", Language: "es"},
	}

	result := Align(transcriptions, translations)
	if len(result.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(result.Cues))
	}
	if result.Dropped() != 0 {
		t.Fatalf("expected no dropped segments, got %d", result.Dropped())
	}
	if result.Cues[0].Original != "Good morning everyone" {
		t.Errorf("cue 1 matched %q", result.Cues[0].Original)
	}
	if result.Cues[1].Original != "Please open your books" {
		t.Errorf("cue 2 matched %q", result.Cues[1].Original)
	}
	for i, cue := range result.Cues {
		if !cue.HasOriginal {
			t.Errorf("cue %d missing original", i+1)
		}
		if cue.Sequence != i+1 {
			t.Errorf("cue %d has sequence %d", i+1, cue.Sequence)
		}
	}
}

func TestAlignEquidistantPrefersEarlierStart(t *testing.T) {
	transcriptions := []TranscriptionSegment{
		{ID: "late", Start: 2000, Text: "later"},
		{ID: "early", Start: 1000, Text: "earlier"},
	}
	translations := []TranslationSegment{
		{ID: "o1", Start: 1500, End: 1800, Text: "mitad", Language: "es"},
	}

	// Run with both transcription orderings; the tie must resolve the same
	// way regardless of input order.
	for _, perm := range [][]TranscriptionSegment{
		transcriptions,
		{transcriptions[1], transcriptions[0]},
	} {
		result := Align(perm, translations)
		if len(result.Cues) != 1 {
			t.Fatalf("expected 1 cue, got %d", len(result.Cues))
		}
		if result.Cues[0].Original != "earlier" {
			t.Errorf("tie resolved to %q, want earlier start", result.Cues[0].Original)
		}
	}
}

func TestAlignDropsMalformedSegments(t *testing.T) {
	transcriptions := []TranscriptionSegment{
		{ID: "ok", Start: 1000, Text: "fine"},
		{ID: "missing", Start: MissingTime(), Text: "no timestamp"},
		{ID: "negative", Start: -5, Text: "negative"},
		{ID: "inf", Start: math.Inf(1), Text: "infinite"},
	}
	translations := []TranslationSegment{
		{ID: "ok", Start: 1000, End: 2000, Text: "bien", Language: "es"},
		{ID: "missing", Start: MissingTime(), Text: "sin marca", Language: "es"},
	}

	result := Align(transcriptions, translations)
	if result.DroppedTranscriptions != 3 {
		t.Errorf("dropped transcriptions = %d, want 3", result.DroppedTranscriptions)
	}
	if result.DroppedTranslations != 1 {
		t.Errorf("dropped translations = %d, want 1", result.DroppedTranslations)
	}
	if len(result.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(result.Cues))
	}
	if result.Cues[0].Original != "fine" {
		t.Errorf("cue matched %q", result.Cues[0].Original)
	}
}

func TestAlignWithoutTranscriptions(t *testing.T) {
	translations := []TranslationSegment{
		{ID: "o1", Start: 500, End: 900, Text: "hola", Language: "es"},
	}

	result := Align(nil, translations)
	if len(result.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(result.Cues))
	}
	cue := result.Cues[0]
	if cue.HasOriginal || cue.Original != "" {
		t.Errorf("expected no original match, got %q", cue.Original)
	}
	if cue.Translated != "hola" {
		t.Errorf("translated = %q", cue.Translated)
	}
}

func TestAlignSortsByStartWithStableTies(t *testing.T) {
	translations := []TranslationSegment{
		{ID: "c", Start: 3000, End: 3500, Text: "third", Language: "fr"},
		{ID: "a1", Start: 1000, End: 1500, Text: "first", Language: "fr"},
		{ID: "a2", Start: 1000, End: 1500, Text: "also first", Language: "fr"},
	}

	result := Align(nil, translations)
	got := make([]string, 0, len(result.Cues))
	for _, cue := range result.Cues {
		got = append(got, cue.Translated)
	}
	want := []string{"first", "also first", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cue order = %v, want %v", got, want)
		}
	}
	for i, cue := range result.Cues {
		if cue.Sequence != i+1 {
			t.Errorf("cue %d has sequence %d", i, cue.Sequence)
		}
	}
}

func TestAlignClampsInvalidEndTimes(t *testing.T) {
	tests := []struct {
		name string
		end  float64
		want int64
	}{
		{"end before start", 200, 1000},
		{"missing end", MissingTime(), 1000},
		{"valid end", 1800, 1800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Align(nil, []TranslationSegment{
				{ID: "o", Start: 1000, End: tt.end, Text: "x", Language: "de"},
			})
			if len(result.Cues) != 1 {
				t.Fatalf("expected 1 cue, got %d", len(result.Cues))
			}
			if result.Cues[0].End != tt.want {
				t.Errorf("end = %d, want %d", result.Cues[0].End, tt.want)
			}
		})
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	result := Align(nil, nil)
	if len(result.Cues) != 0 || result.Dropped() != 0 {
		t.Fatalf("expected empty alignment, got %+v", result)
	}
}
