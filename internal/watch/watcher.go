package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"lectern/internal/ingest"
	"lectern/internal/logging"
)

// settleDelay gives producers a moment to finish writing before a new file
// is read.
const settleDelay = 100 * time.Millisecond

const (
	doneSuffix   = ".done"
	failedSuffix = ".failed"
)

// Watcher imports recording documents dropped into a directory.
type Watcher struct {
	dir      string
	importer *ingest.Importer
	logger   *slog.Logger
}

// New wires a watcher over dir. logger may be nil.
func New(dir string, importer *ingest.Importer, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Watcher{
		dir:      dir,
		importer: importer,
		logger:   logging.WithComponent(logger, "watch"),
	}
}

// Run scans the directory for existing documents, then blocks processing
// filesystem events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			w.logger.Warn("close watcher", logging.Error(closeErr))
		}
	}()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.scanExisting(ctx)
	w.logger.Info("import watcher started", slog.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isDocument(event.Name) {
				continue
			}
			time.Sleep(settleDelay)
			w.process(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logging.Error(err))
		}
	}
}

func (w *Watcher) scanExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("scan import dir", logging.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := filepath.Join(w.dir, entry.Name())
		if !isDocument(name) {
			continue
		}
		w.process(ctx, name)
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		// Already renamed or removed by a concurrent event.
		return
	}
	id, err := w.importer.ImportFile(ctx, path)
	if err != nil {
		w.logger.Error("import failed", slog.String("file", path), logging.Error(err))
		w.rename(path, failedSuffix)
		return
	}
	w.logger.Info("imported document", slog.String("file", path), slog.String("recording", id))
	w.rename(path, doneSuffix)
}

func (w *Watcher) rename(path, suffix string) {
	if err := os.Rename(path, path+suffix); err != nil {
		w.logger.Warn("rename processed file", slog.String("file", path), logging.Error(err))
	}
}

func isDocument(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
