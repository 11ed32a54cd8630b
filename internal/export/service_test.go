package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lectern/internal/config"
	"lectern/internal/metrics"
	"lectern/internal/store"
	"lectern/internal/subtitle"
)

type fakeStorage struct {
	recording      *store.Recording
	segmentCount   int
	transcriptions []subtitle.TranscriptionSegment
	translations   []subtitle.TranslationSegment

	recordingCalls int
	countCalls     int
	segmentCalls   int
}

func (f *fakeStorage) Recording(ctx context.Context, id string) (*store.Recording, error) {
	f.recordingCalls++
	return f.recording, nil
}

func (f *fakeStorage) SegmentCount(ctx context.Context, recordingID string) (int, error) {
	f.countCalls++
	return f.segmentCount, nil
}

func (f *fakeStorage) Transcriptions(ctx context.Context, recordingID string) ([]subtitle.TranscriptionSegment, error) {
	f.segmentCalls++
	return f.transcriptions, nil
}

func (f *fakeStorage) Translations(ctx context.Context, recordingID, language string) ([]subtitle.TranslationSegment, error) {
	f.segmentCalls++
	out := make([]subtitle.TranslationSegment, 0, len(f.translations))
	for _, seg := range f.translations {
		if seg.Language == language {
			out = append(out, seg)
		}
	}
	return out, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func populatedStorage() *fakeStorage {
	return &fakeStorage{
		recording:    &store.Recording{ID: "rec-1", Room: "Physics 101"},
		segmentCount: 3,
		transcriptions: []subtitle.TranscriptionSegment{
			{ID: "t1", Start: 0, End: 900, Text: "Good morning"},
		},
		translations: []subtitle.TranslationSegment{
			{ID: "o1", Start: 100, End: 950, Text: "Buenos días", Language: "es"},
			{ID: "o2", Start: 2000, End: 2500, Text: "Bonjour", Language: "fr"},
		},
	}
}

func TestExportSuccess(t *testing.T) {
	storage := populatedStorage()
	monitor := metrics.NewMonitor(10)
	svc := NewService(storage, testConfig(), monitor, nil)

	result, err := svc.Export(context.Background(), "rec-1", "es", "srt")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result.Filename != "physics_101_translation_es.srt" {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.MIMEType != "application/x-subrip" {
		t.Errorf("mime = %q", result.MIMEType)
	}
	if result.CueCount != 1 {
		t.Errorf("cue count = %d", result.CueCount)
	}
	if !strings.Contains(string(result.Content), "Buenos días") {
		t.Errorf("content missing translation: %q", result.Content)
	}
	if !strings.Contains(string(result.Content), "Good morning") {
		t.Errorf("content missing original: %q", result.Content)
	}
	snap := monitor.Snapshot()
	if snap.Successes != 1 || snap.ByFormat["srt"] != 1 {
		t.Errorf("metrics = %+v", snap)
	}
}

func TestExportInvalidFormatSkipsStorage(t *testing.T) {
	storage := populatedStorage()
	svc := NewService(storage, testConfig(), nil, nil)

	_, err := svc.Export(context.Background(), "rec-1", "es", "docx")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
	if storage.recordingCalls != 0 || storage.countCalls != 0 || storage.segmentCalls != 0 {
		t.Errorf("storage touched on invalid format: %+v", storage)
	}
}

func TestExportDisabledFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Export.Formats = []string{"srt"}
	svc := NewService(populatedStorage(), cfg, nil, nil)

	_, err := svc.Export(context.Background(), "rec-1", "es", "vtt")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestExportUnknownRecording(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewService(storage, testConfig(), nil, nil)

	_, err := svc.Export(context.Background(), "absent", "es", "srt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExportLanguageWithoutTranslations(t *testing.T) {
	svc := NewService(populatedStorage(), testConfig(), nil, nil)

	_, err := svc.Export(context.Background(), "rec-1", "de", "vtt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExportAllMalformedTranslations(t *testing.T) {
	storage := populatedStorage()
	storage.translations = []subtitle.TranslationSegment{
		{ID: "o1", Start: subtitle.MissingTime(), Text: "sin marca", Language: "es"},
		{ID: "o2", Start: -10, End: 500, Text: "negativa", Language: "es"},
	}
	svc := NewService(storage, testConfig(), nil, nil)

	_, err := svc.Export(context.Background(), "rec-1", "es", "vtt")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
}

func TestExportSegmentCeiling(t *testing.T) {
	storage := populatedStorage()
	cfg := testConfig()
	cfg.Export.MaxSegments = 2
	monitor := metrics.NewMonitor(10)
	svc := NewService(storage, cfg, monitor, nil)

	_, err := svc.Export(context.Background(), "rec-1", "es", "srt")
	if !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("err = %v, want ErrResourceExhausted", err)
	}
	if storage.segmentCalls != 0 {
		t.Error("segments loaded despite exceeding the ceiling")
	}
	if monitor.Snapshot().Failures != 1 {
		t.Error("failure not recorded")
	}
}

func TestExportNormalizesLanguageAlias(t *testing.T) {
	storage := populatedStorage()
	storage.translations = []subtitle.TranslationSegment{
		{ID: "o1", Start: 0, End: 500, Text: "早上好", Language: "zh"},
	}
	svc := NewService(storage, testConfig(), nil, nil)

	result, err := svc.Export(context.Background(), "rec-1", "cmn", "txt")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result.Language != "zh" {
		t.Errorf("language = %q, want zh", result.Language)
	}
}

func TestFormatMIMETypes(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatSRT, "application/x-subrip"},
		{FormatVTT, "text/vtt"},
		{FormatTranscript, "text/plain"},
	}
	for _, tt := range tests {
		if got := tt.format.MIMEType(); got != tt.want {
			t.Errorf("%s MIME = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"srt", FormatSRT, false},
		{"SRT", FormatSRT, false},
		{"webvtt", FormatVTT, false},
		{" txt ", FormatTranscript, false},
		{"transcript", FormatTranscript, false},
		{"docx", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrInvalidFormat", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}
