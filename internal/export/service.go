package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lectern/internal/config"
	"lectern/internal/language"
	"lectern/internal/logging"
	"lectern/internal/metrics"
	"lectern/internal/store"
	"lectern/internal/subtitle"
	"lectern/internal/textutil"
)

// Storage is the persistence surface the service needs. *store.Store
// satisfies it.
type Storage interface {
	Recording(ctx context.Context, id string) (*store.Recording, error)
	SegmentCount(ctx context.Context, recordingID string) (int, error)
	Transcriptions(ctx context.Context, recordingID string) ([]subtitle.TranscriptionSegment, error)
	Translations(ctx context.Context, recordingID, language string) ([]subtitle.TranslationSegment, error)
}

// Result is a rendered caption document ready to serve or write to disk.
type Result struct {
	Content         []byte
	Filename        string
	MIMEType        string
	Format          Format
	Language        string
	CueCount        int
	DroppedSegments int
}

// Service orchestrates caption exports.
type Service struct {
	storage     Storage
	cfg         *config.Config
	monitor     *metrics.Monitor
	logger      *slog.Logger
	maxSegments int
}

// NewService wires an export service. monitor may be nil when metrics are
// not collected.
func NewService(storage Storage, cfg *config.Config, monitor *metrics.Monitor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		storage:     storage,
		cfg:         cfg,
		monitor:     monitor,
		logger:      logging.WithComponent(logger, "export"),
		maxSegments: cfg.Export.MaxSegments,
	}
}

// Export renders the recording's captions for one language in the requested
// format. Validation happens before any storage access so malformed
// requests never touch the database.
func (s *Service) Export(ctx context.Context, recordingID, lang, formatName string) (*Result, error) {
	started := time.Now()
	result, err := s.export(ctx, recordingID, lang, formatName)
	if err != nil {
		if s.monitor != nil {
			s.monitor.RecordFailure()
		}
		return nil, err
	}
	if s.monitor != nil {
		s.monitor.RecordSuccess(string(result.Format), time.Since(started))
	}
	return result, nil
}

func (s *Service) export(ctx context.Context, recordingID, lang, formatName string) (*Result, error) {
	format, err := ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	if !s.cfg.FormatEnabled(string(format)) {
		return nil, fmt.Errorf("%w: %q disabled by configuration", ErrInvalidFormat, format)
	}
	lang = language.Normalize(lang)

	rec, err := s.storage.Recording(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load recording: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, recordingID)
	}

	if s.maxSegments > 0 {
		count, err := s.storage.SegmentCount(ctx, recordingID)
		if err != nil {
			return nil, fmt.Errorf("count segments: %w", err)
		}
		if count > s.maxSegments {
			return nil, fmt.Errorf("%w: %d segments, limit %d", ErrResourceExhausted, count, s.maxSegments)
		}
	}

	translations, err := s.storage.Translations(ctx, recordingID, lang)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("%w: recording %s has no translations for language %s", ErrNotFound, recordingID, lang)
	}
	transcriptions, err := s.storage.Transcriptions(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load transcriptions: %w", err)
	}

	alignment := subtitle.Align(transcriptions, translations)
	if len(alignment.Cues) == 0 {
		return nil, fmt.Errorf("%w: recording %s language %s", ErrEmptyResult, recordingID, lang)
	}

	var content []byte
	switch format {
	case FormatSRT:
		content = subtitle.EncodeSRT(alignment.Cues)
	case FormatVTT:
		content = subtitle.EncodeVTT(alignment.Cues)
	default:
		content = subtitle.EncodeTranscript(alignment.Cues)
	}

	result := &Result{
		Content:         content,
		Filename:        Filename(rec.Room, lang, format),
		MIMEType:        format.MIMEType(),
		Format:          format,
		Language:        lang,
		CueCount:        len(alignment.Cues),
		DroppedSegments: alignment.Dropped(),
	}
	s.logger.Info("export complete",
		slog.String("recording", recordingID),
		slog.String("language", lang),
		slog.String("format", string(format)),
		slog.Int("cues", result.CueCount),
		slog.Int("dropped", result.DroppedSegments))
	return result, nil
}

// Filename builds the download name for an export: the sanitized room name,
// the language code, and the format extension.
func Filename(room, lang string, format Format) string {
	return fmt.Sprintf("%s_translation_%s.%s",
		textutil.SanitizeToken(room),
		textutil.SanitizeToken(lang),
		format.Extension())
}
