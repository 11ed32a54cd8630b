package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"lectern/internal/config"
	"lectern/internal/subtitle"
)

// Store manages recording persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the recording database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.DataDir, "lectern.db"))
}

// OpenPath opens the database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRecording inserts a recording or refreshes its metadata when the
// identifier already exists.
func (s *Store) SaveRecording(ctx context.Context, rec Recording) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO recordings (id, room, title, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET room = excluded.room, title = excluded.title, updated_at = excluded.updated_at`,
		rec.ID,
		rec.Room,
		nullableString(rec.Title),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	return nil
}

// Recording fetches one recording by identifier. A missing recording returns
// (nil, nil).
func (s *Store) Recording(ctx context.Context, id string) (*Recording, error) {
	row := s.db.QueryRowContext(
		ctx,
		"SELECT id, room, title, created_at, updated_at FROM recordings WHERE id = ?",
		id,
	)
	rec, err := scanRecording(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch recording: %w", err)
	}
	return rec, nil
}

// ListRecordings returns all recordings with segment counts, newest first.
func (s *Store) ListRecordings(ctx context.Context) ([]RecordingSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT r.id, r.room, r.title, r.created_at, r.updated_at,
                (SELECT COUNT(1) FROM transcription_segments t WHERE t.recording_id = r.id),
                (SELECT COUNT(1) FROM translation_segments t WHERE t.recording_id = r.id)
         FROM recordings r
         ORDER BY r.created_at DESC, r.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	var summaries []RecordingSummary
	for rows.Next() {
		var (
			summary    RecordingSummary
			title      sql.NullString
			createdRaw string
			updatedRaw string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Room,
			&title,
			&createdRaw,
			&updatedRaw,
			&summary.TranscriptionCount,
			&summary.TranslationCount,
		); err != nil {
			return nil, fmt.Errorf("scan recording summary: %w", err)
		}
		summary.Title = title.String
		summary.CreatedAt = parseTimeString(createdRaw)
		summary.UpdatedAt = parseTimeString(updatedRaw)

		languages, err := s.Languages(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		summary.Languages = languages
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return summaries, nil
}

// DeleteRecording removes a recording and, through foreign keys, its
// segments. It reports whether a row was deleted.
func (s *Store) DeleteRecording(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete recording: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// AddTranscriptions appends transcription segments in the given order.
func (s *Store) AddTranscriptions(ctx context.Context, recordingID string, segments []subtitle.TranscriptionSegment) error {
	if len(segments) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	base, err := nextPosition(ctx, tx, "transcription_segments", recordingID)
	if err != nil {
		return err
	}
	for i, seg := range segments {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO transcription_segments (id, recording_id, position, start_ms, end_ms, text, speaker)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			seg.ID,
			recordingID,
			base+i,
			nullableTiming(seg.Start),
			nullableTiming(seg.End),
			seg.Text,
			nullableString(seg.Speaker),
		); err != nil {
			return fmt.Errorf("insert transcription segment: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transcriptions: %w", err)
	}
	return nil
}

// AddTranslations appends translation segments in the given order.
func (s *Store) AddTranslations(ctx context.Context, recordingID string, segments []subtitle.TranslationSegment) error {
	if len(segments) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	base, err := nextPosition(ctx, tx, "translation_segments", recordingID)
	if err != nil {
		return err
	}
	for i, seg := range segments {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO translation_segments (id, recording_id, position, start_ms, end_ms, text, language)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			seg.ID,
			recordingID,
			base+i,
			nullableTiming(seg.Start),
			nullableTiming(seg.End),
			seg.Text,
			seg.Language,
		); err != nil {
			return fmt.Errorf("insert translation segment: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit translations: %w", err)
	}
	return nil
}

// Transcriptions returns all transcription segments for a recording in
// ingest order.
func (s *Store) Transcriptions(ctx context.Context, recordingID string) ([]subtitle.TranscriptionSegment, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, start_ms, end_ms, text, speaker
         FROM transcription_segments WHERE recording_id = ? ORDER BY position`,
		recordingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcriptions: %w", err)
	}
	defer rows.Close()

	var segments []subtitle.TranscriptionSegment
	for rows.Next() {
		var (
			seg     subtitle.TranscriptionSegment
			start   sql.NullFloat64
			end     sql.NullFloat64
			speaker sql.NullString
		)
		if err := rows.Scan(&seg.ID, &start, &end, &seg.Text, &speaker); err != nil {
			return nil, fmt.Errorf("scan transcription segment: %w", err)
		}
		seg.Start = timingValue(start)
		seg.End = timingValue(end)
		seg.Speaker = speaker.String
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcriptions: %w", err)
	}
	return segments, nil
}

// Translations returns a recording's translation segments for one language
// in ingest order.
func (s *Store) Translations(ctx context.Context, recordingID, language string) ([]subtitle.TranslationSegment, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, start_ms, end_ms, text, language
         FROM translation_segments WHERE recording_id = ? AND language = ? ORDER BY position`,
		recordingID,
		language,
	)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	var segments []subtitle.TranslationSegment
	for rows.Next() {
		var (
			seg   subtitle.TranslationSegment
			start sql.NullFloat64
			end   sql.NullFloat64
		)
		if err := rows.Scan(&seg.ID, &start, &end, &seg.Text, &seg.Language); err != nil {
			return nil, fmt.Errorf("scan translation segment: %w", err)
		}
		seg.Start = timingValue(start)
		seg.End = timingValue(end)
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return segments, nil
}

// Languages returns the distinct translation languages stored for a
// recording, sorted.
func (s *Store) Languages(ctx context.Context, recordingID string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT DISTINCT language FROM translation_segments WHERE recording_id = ? ORDER BY language",
		recordingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var language string
		if err := rows.Scan(&language); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		languages = append(languages, language)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}
	return languages, nil
}

// SegmentCount returns the combined transcription and translation segment
// count for a recording.
func (s *Store) SegmentCount(ctx context.Context, recordingID string) (int, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT
            (SELECT COUNT(1) FROM transcription_segments WHERE recording_id = ?)
          + (SELECT COUNT(1) FROM translation_segments WHERE recording_id = ?)`,
		recordingID,
		recordingID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count segments: %w", err)
	}
	return count, nil
}

func nextPosition(ctx context.Context, tx *sql.Tx, table, recordingID string) (int, error) {
	row := tx.QueryRowContext(
		ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM "+table+" WHERE recording_id = ?",
		recordingID,
	)
	var next int
	if err := row.Scan(&next); err != nil {
		return 0, fmt.Errorf("next position for %s: %w", table, err)
	}
	return next, nil
}

func scanRecording(scanner interface{ Scan(dest ...any) error }) (*Recording, error) {
	var (
		rec        Recording
		title      sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&rec.ID, &rec.Room, &title, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	rec.Title = title.String
	rec.CreatedAt = parseTimeString(createdRaw)
	rec.UpdatedAt = parseTimeString(updatedRaw)
	return &rec, nil
}

func parseTimeString(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// nullableTiming maps the NaN missing-timing sentinel to NULL.
func nullableTiming(value float64) any {
	if math.IsNaN(value) {
		return nil
	}
	return value
}

func timingValue(value sql.NullFloat64) float64 {
	if !value.Valid {
		return subtitle.MissingTime()
	}
	return value.Float64
}
