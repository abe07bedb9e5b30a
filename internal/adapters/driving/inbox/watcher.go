// Package inbox watches a directory for scraper exports and imports them
// into the case store as they arrive.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// ProcessedDir is the subdirectory imported exports are moved into.
const ProcessedDir = "processed"

// DefaultSettle is how long a file must stay quiet before it is imported.
const DefaultSettle = 250 * time.Millisecond

// Importer merges a scraper export into the stored cases.
type Importer interface {
	ImportCases(ctx context.Context, data []byte) (domain.ImportResult, error)
}

// Event reports the import of one export file.
type Event struct {
	Path   string
	Result domain.ImportResult
	Err    error
}

// Watcher imports exports dropped into a directory.
type Watcher struct {
	dir      string
	importer Importer
	settle   time.Duration
	mu       sync.Mutex
}

// New creates a watcher for dir.
func New(dir string, importer Importer) *Watcher {
	return &Watcher{
		dir:      dir,
		importer: importer,
		settle:   DefaultSettle,
	}
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// ImportExisting imports the exports already in the directory, in name order.
func (w *Watcher) ImportExisting(ctx context.Context) ([]Event, error) {
	entries, err := os.ReadDir(w.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && isExport(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	events := make([]Event, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		events = append(events, w.importFile(ctx, filepath.Join(w.dir, name)))
	}
	return events, nil
}

// Watch starts watching the directory. The returned channel is closed when
// ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(w.dir, 0700); err != nil {
		return nil, fmt.Errorf("creating inbox: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.dir, err)
	}

	out := make(chan Event)
	go w.loop(ctx, fw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, out chan<- Event) {
	defer close(out)
	defer fw.Close()

	done := make(chan struct{})
	defer close(done)

	ready := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			path, ok := w.handleFsEvent(ev)
			if !ok {
				continue
			}
			if t, exists := timers[path]; exists {
				t.Reset(w.settle)
				continue
			}
			timers[path] = time.AfterFunc(w.settle, func() {
				select {
				case ready <- path:
				case <-done:
				}
			})

		case path := <-ready:
			delete(timers, path)
			if _, err := os.Stat(path); err != nil {
				// Already imported by an earlier timer, or removed.
				continue
			}
			event := w.importFile(ctx, path)
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("inbox watcher: %v", err)
		}
	}
}

// handleFsEvent returns the path to import for an event, if any.
func (w *Watcher) handleFsEvent(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return "", false
	}
	if !isExport(filepath.Base(ev.Name)) {
		return "", false
	}
	info, err := os.Stat(ev.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return ev.Name, true
}

// importFile imports one export and moves it into the processed directory.
func (w *Watcher) importFile(ctx context.Context, path string) Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	event := Event{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		event.Err = fmt.Errorf("reading %s: %w", path, err)
		return event
	}

	event.Result, event.Err = w.importer.ImportCases(ctx, data)
	if event.Err != nil {
		logger.Warn("import %s: %v", filepath.Base(path), event.Err)
		return event
	}
	logger.Info("imported %s: %d added, %d updated", filepath.Base(path), event.Result.Added, event.Result.Updated)

	if err := w.archive(path); err != nil {
		logger.Warn("archiving %s: %v", filepath.Base(path), err)
	}
	return event
}

func (w *Watcher) archive(path string) error {
	dest := filepath.Join(w.dir, ProcessedDir)
	if err := os.MkdirAll(dest, 0700); err != nil {
		return err
	}
	target := filepath.Join(dest, filepath.Base(path))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(path, target)
}

// isExport reports whether name looks like a scraper export.
func isExport(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
