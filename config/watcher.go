package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/ldmodel/field"
)

// WatcherConfig configures the config file watcher.
type WatcherConfig struct {
	// Path is the config file to watch.
	Path string

	// DebounceDelay is how long to wait for more writes before
	// reloading (default 100ms). Editors often write a file several
	// times in quick succession.
	DebounceDelay time.Duration

	// Logger for logging events.
	Logger *slog.Logger
}

// Watcher reloads a source-config file when it changes and emits the
// resulting SourceConfig. Files that fail to load or validate are
// logged and skipped; the previous configuration stays in effect.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   bool

	events chan field.SourceConfig
}

// NewWatcher creates a watcher for the given config file.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		events:  make(chan field.SourceConfig, 1),
	}, nil
}

// Events returns the channel of reloaded source configs.
func (w *Watcher) Events() <-chan field.SourceConfig {
	return w.events
}

// Start begins watching the config file's directory. Watching the
// directory rather than the file survives rename-based atomic saves.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.config.Path)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Config watcher started",
		"path", w.config.Path,
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.events)
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent marks a reload pending when the watched file changed.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.config.Path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()
}

// flushPending reloads the file once the debounce window is quiet.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()
	if !pending {
		return
	}

	cfg, err := LoadFromFile(w.config.Path)
	if err != nil {
		w.logger.Warn("Failed to reload config", "path", w.config.Path, "error", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("Reloaded config is invalid", "path", w.config.Path, "error", err)
		return
	}

	w.logger.Debug("Config reloaded", "path", w.config.Path)
	select {
	case w.events <- cfg.ToSourceConfig():
	default:
		// Drop when the consumer is behind.
	}
}
