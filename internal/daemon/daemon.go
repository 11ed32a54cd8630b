package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"lectern/internal/config"
	"lectern/internal/export"
	"lectern/internal/ingest"
	"lectern/internal/livecaption"
	"lectern/internal/logging"
	"lectern/internal/metrics"
	"lectern/internal/store"
	"lectern/internal/watch"
)

// Daemon coordinates the background services and enforces single-instance
// execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	exports *export.Service
	hub     *livecaption.Hub
	monitor *metrics.Monitor
	watcher *watch.Watcher

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	api     *apiServer
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	DBPath       string
	LockFilePath string
	APIBind      string
	Metrics      metrics.Snapshot
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	monitor := metrics.NewMonitor(0)
	hub := livecaption.NewHub(cfg.Captions.WindowSize, logger)
	exports := export.NewService(st, cfg, monitor, logger)
	importer := ingest.NewImporter(st, logger)
	watcher := watch.New(cfg.Paths.ImportDir, importer, logger)

	lockPath := filepath.Join(cfg.Paths.DataDir, "lecternd.lock")
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.WithComponent(logger, "daemon"),
		store:    st,
		exports:  exports,
		hub:      hub,
		monitor:  monitor,
		watcher:  watcher,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the instance lock and launches the watcher and API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another lectern daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	if d.api != nil {
		if err := d.api.start(d.ctx); err != nil {
			d.releaseLock()
			d.cancel()
			return err
		}
	}

	go func() {
		if err := d.watcher.Run(d.ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("import watcher stopped", logging.Error(err))
		}
	}()

	d.running.Store(true)
	d.logger.Info("daemon started", slog.String("lock", d.lockPath))
	return nil
}

// Stop shuts down the API server and releases the instance lock.
func (d *Daemon) Stop() {
	if !d.running.Swap(false) {
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
	if d.api != nil {
		d.api.stop()
	}
	d.releaseLock()
	d.logger.Info("daemon stopped")
}

// Wait blocks until the daemon context ends.
func (d *Daemon) Wait() {
	if d.ctx != nil {
		<-d.ctx.Done()
	}
}

// Status reports runtime information.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		DBPath:       d.store.Path(),
		LockFilePath: d.lockPath,
		APIBind:      d.cfg.Paths.APIBind,
		Metrics:      d.monitor.Snapshot(),
	}
}

func (d *Daemon) releaseLock() {
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("release lock", logging.Error(err))
	}
}
