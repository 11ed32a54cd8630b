package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"lectern/internal/config"
	"lectern/internal/export"
	"lectern/internal/language"
	"lectern/internal/livecaption"
	"lectern/internal/logging"
	"lectern/internal/store"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil
	}

	srv := &apiServer{
		bind:   bind,
		logger: logging.WithComponent(logger, "api"),
		daemon: d,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", srv.handleStatus)
	mux.HandleFunc("GET /api/metrics", srv.handleMetrics)
	mux.HandleFunc("GET /api/languages", srv.handleLanguages)
	mux.HandleFunc("GET /api/recordings", srv.handleListRecordings)
	mux.HandleFunc("GET /api/recordings/{id}", srv.handleRecording)
	mux.HandleFunc("DELETE /api/recordings/{id}", srv.handleDeleteRecording)
	mux.HandleFunc("GET /api/recordings/{id}/export", srv.handleExport)
	mux.HandleFunc("POST /api/captions", srv.handlePublishCaption)
	mux.HandleFunc("GET /api/captions/stream", srv.handleCaptionStream)

	srv.server = &http.Server{
		Handler:           authMiddleware(cfg.Paths.APIToken, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.daemon.Status()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"running":  status.Running,
		"db_path":  status.DBPath,
		"api_bind": status.APIBind,
	})
}

func (s *apiServer) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.daemon.monitor.Snapshot())
}

func (s *apiServer) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"languages": language.Supported()})
}

func (s *apiServer) handleListRecordings(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.daemon.store.ListRecordings(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	payload := make([]map[string]any, 0, len(summaries))
	for _, summary := range summaries {
		payload = append(payload, recordingPayload(summary))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"recordings": payload})
}

func (s *apiServer) handleRecording(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, err := s.daemon.store.Recording(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.writeError(w, http.StatusNotFound, "recording not found")
		return
	}
	languages, err := s.daemon.store.Languages(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":         rec.ID,
		"room":       rec.Room,
		"title":      rec.Title,
		"created_at": rec.CreatedAt,
		"languages":  languages,
	})
}

func (s *apiServer) handleDeleteRecording(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.daemon.store.DeleteRecording(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "recording not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *apiServer) handleExport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	lang := r.URL.Query().Get("language")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(export.FormatSRT)
	}

	result, err := s.daemon.exports.Export(r.Context(), id, lang, format)
	if err != nil {
		s.writeError(w, exportStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", result.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		s.logger.Warn("write export body", logging.Error(err))
	}
}

func (s *apiServer) handlePublishCaption(w http.ResponseWriter, r *http.Request) {
	var caption livecaption.Caption
	if err := json.NewDecoder(r.Body).Decode(&caption); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid caption payload")
		return
	}
	if caption.Room == "" || caption.Language == "" {
		s.writeError(w, http.StatusBadRequest, "caption requires room and language")
		return
	}
	caption.Language = language.Normalize(caption.Language)
	s.daemon.hub.Publish(caption)
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "published"})
}

func (s *apiServer) handleCaptionStream(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	lang := r.URL.Query().Get("language")
	if room == "" || lang == "" {
		s.writeError(w, http.StatusBadRequest, "stream requires room and language")
		return
	}
	s.daemon.hub.ServeStream(w, r, room, language.Normalize(lang))
}

// exportStatus maps export failures onto HTTP status codes. Validation
// problems are client errors; missing data is not found; anything else is a
// server fault.
func exportStatus(err error) int {
	switch {
	case errors.Is(err, export.ErrInvalidFormat), errors.Is(err, export.ErrResourceExhausted):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrNotFound), errors.Is(err, export.ErrEmptyResult):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func recordingPayload(summary store.RecordingSummary) map[string]any {
	return map[string]any{
		"id":             summary.ID,
		"room":           summary.Room,
		"title":          summary.Title,
		"created_at":     summary.CreatedAt,
		"transcriptions": summary.TranscriptionCount,
		"translations":   summary.TranslationCount,
		"languages":      summary.Languages,
	}
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
