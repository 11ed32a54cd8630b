package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"lectern/internal/language"
	"lectern/internal/logging"
	"lectern/internal/store"
	"lectern/internal/subtitle"
)

var (
	ErrMissingRoom        = errors.New("document missing room")
	ErrMissingTranslation = errors.New("translation segment missing language")
)

// Document is the on-disk JSON shape. Timing fields are pointers so an
// absent timestamp is distinguishable from zero.
type Document struct {
	Recording      RecordingDoc     `json:"recording"`
	Transcriptions []SegmentDoc     `json:"transcriptions"`
	Translations   []TranslationDoc `json:"translations"`
}

type RecordingDoc struct {
	ID    string `json:"id"`
	Room  string `json:"room"`
	Title string `json:"title"`
}

type SegmentDoc struct {
	ID      string   `json:"id"`
	StartMS *float64 `json:"start_ms"`
	EndMS   *float64 `json:"end_ms"`
	Text    string   `json:"text"`
	Speaker string   `json:"speaker"`
}

type TranslationDoc struct {
	ID       string   `json:"id"`
	StartMS  *float64 `json:"start_ms"`
	EndMS    *float64 `json:"end_ms"`
	Text     string   `json:"text"`
	Language string   `json:"language"`
}

// Parse decodes and validates a document. Segment identifiers are filled
// with fresh UUIDs when absent and language codes are normalized.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if strings.TrimSpace(doc.Recording.Room) == "" {
		return nil, ErrMissingRoom
	}
	if doc.Recording.ID == "" {
		doc.Recording.ID = uuid.NewString()
	}
	for i := range doc.Transcriptions {
		if doc.Transcriptions[i].ID == "" {
			doc.Transcriptions[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Translations {
		if strings.TrimSpace(doc.Translations[i].Language) == "" {
			return nil, fmt.Errorf("%w: segment %d", ErrMissingTranslation, i)
		}
		doc.Translations[i].Language = language.Normalize(doc.Translations[i].Language)
		if doc.Translations[i].ID == "" {
			doc.Translations[i].ID = uuid.NewString()
		}
	}
	return &doc, nil
}

// Importer loads documents into the store.
type Importer struct {
	store  *store.Store
	logger *slog.Logger
}

// NewImporter wires an importer. logger may be nil.
func NewImporter(st *store.Store, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{store: st, logger: logging.WithComponent(logger, "ingest")}
}

// Import persists a parsed document and returns the recording identifier.
func (im *Importer) Import(ctx context.Context, doc *Document) (string, error) {
	rec := store.Recording{
		ID:    doc.Recording.ID,
		Room:  doc.Recording.Room,
		Title: doc.Recording.Title,
	}
	if err := im.store.SaveRecording(ctx, rec); err != nil {
		return "", err
	}

	transcriptions := make([]subtitle.TranscriptionSegment, 0, len(doc.Transcriptions))
	for _, seg := range doc.Transcriptions {
		transcriptions = append(transcriptions, subtitle.TranscriptionSegment{
			ID:      seg.ID,
			Start:   timingOrMissing(seg.StartMS),
			End:     timingOrMissing(seg.EndMS),
			Text:    seg.Text,
			Speaker: seg.Speaker,
		})
	}
	if err := im.store.AddTranscriptions(ctx, rec.ID, transcriptions); err != nil {
		return "", err
	}

	translations := make([]subtitle.TranslationSegment, 0, len(doc.Translations))
	for _, seg := range doc.Translations {
		translations = append(translations, subtitle.TranslationSegment{
			ID:       seg.ID,
			Start:    timingOrMissing(seg.StartMS),
			End:      timingOrMissing(seg.EndMS),
			Text:     seg.Text,
			Language: seg.Language,
		})
	}
	if err := im.store.AddTranslations(ctx, rec.ID, translations); err != nil {
		return "", err
	}

	im.logger.Info("imported recording",
		slog.String("recording", rec.ID),
		slog.String("room", rec.Room),
		slog.Int("transcriptions", len(transcriptions)),
		slog.Int("translations", len(translations)))
	return rec.ID, nil
}

// ImportFile parses and imports one document file.
func (im *Importer) ImportFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return im.Import(ctx, doc)
}

func timingOrMissing(value *float64) float64 {
	if value == nil {
		return subtitle.MissingTime()
	}
	return *value
}
