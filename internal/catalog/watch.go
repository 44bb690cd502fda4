package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Source hands out the current catalog snapshot. A snapshot, once returned,
// never changes; reloads publish a new one.
type Source interface {
	Snapshot() *Catalog
}

// Static is a Source that always returns the same snapshot.
type Static struct {
	c *Catalog
}

// NewStatic wraps a fixed snapshot.
func NewStatic(c *Catalog) *Static {
	return &Static{c: c}
}

// Snapshot implements Source.
func (s *Static) Snapshot() *Catalog {
	return s.c
}

// Dynamic is a Source whose snapshot can be replaced at runtime, for
// example after the catalog table has been re-imported.
type Dynamic struct {
	current atomic.Pointer[Catalog]
}

// NewDynamic starts with the given snapshot.
func NewDynamic(c *Catalog) *Dynamic {
	d := &Dynamic{}
	d.current.Store(c)
	return d
}

// Snapshot implements Source.
func (d *Dynamic) Snapshot() *Catalog {
	return d.current.Load()
}

// Publish makes c the snapshot for subsequent generations. Generations
// already running keep the snapshot they started with.
func (d *Dynamic) Publish(c *Catalog) {
	d.current.Store(c)
}

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 500 * time.Millisecond

// FileWatcher serves snapshots loaded from a YAML file and reloads the file
// when it changes on disk. A file that fails to parse is logged and ignored;
// the previous snapshot stays active.
type FileWatcher struct {
	path    string
	log     *slog.Logger
	current atomic.Pointer[Catalog]
}

// NewFileWatcher loads path once. Call Run to start watching for changes.
func NewFileWatcher(path string, log *slog.Logger) (*FileWatcher, error) {
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{path: path, log: log}
	w.current.Store(c)
	return w, nil
}

// Snapshot implements Source.
func (w *FileWatcher) Snapshot() *Catalog {
	return w.current.Load()
}

// Reload re-reads the file and swaps in the new snapshot on success.
func (w *FileWatcher) Reload() error {
	c, err := LoadFile(w.path)
	if err != nil {
		return err
	}
	w.current.Store(c)
	w.log.Info("catalog reloaded", "path", w.path, "exercises", c.Len())
	return nil
}

// Run watches the catalog file's directory until ctx is cancelled. The
// directory is watched rather than the file so that atomic renames by
// editors are picked up.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching catalog", "path", w.path)

	target := filepath.Clean(w.path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(reloadDebounce)
			}
		case <-pending:
			pending = nil
			if err := w.Reload(); err != nil {
				w.log.Warn("catalog reload failed, keeping previous snapshot", "path", w.path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("catalog watcher error", "error", err)
		}
	}
}
