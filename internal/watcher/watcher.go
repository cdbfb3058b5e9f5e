package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/specboard/internal/domain"
)

// Op describes what happened to a module file.
type Op string

const (
	OpCreated  Op = "created"
	OpModified Op = "modified"
	OpRemoved  Op = "removed"
)

// Event is a change to a single module file.
type Event struct {
	Module string
	Op     Op
	Path   string
}

// Watcher reports changes to module files in a directory. Modules are read
// from disk on every request, so a change only needs to be reported.
type Watcher struct {
	dir      string
	onChange func(Event)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// New creates a watcher for dir. onChange is called from the watcher
// goroutine; nil means changes are only logged.
func New(dir string, onChange func(Event)) *Watcher {
	if onChange == nil {
		onChange = LogEvent
	}
	return &Watcher{dir: dir, onChange: onChange}
}

// LogEvent logs a module change at info level.
func LogEvent(ev Event) {
	slog.Info("Module file changed", "module", ev.Module, "op", string(ev.Op), "path", ev.Path)
}

// Start begins watching until ctx is cancelled. A missing directory is not an
// error: there is nothing to watch and the server still answers "not found".
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		slog.Debug("Module watcher already active")
		return nil
	}

	if _, err := os.Stat(w.dir); os.IsNotExist(err) {
		slog.Debug("Modules directory does not exist, skipping watcher setup", "path", w.dir)
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.watcher = fw

	go w.run(ctx, fw)

	slog.Debug("Started module watcher", "directory", w.dir)
	return nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher) {
	defer func() {
		w.mu.Lock()
		if w.watcher == fw {
			_ = fw.Close()
			w.watcher = nil
		}
		w.mu.Unlock()
		slog.Debug("Module watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev, ok := translate(event); ok {
				w.onChange(ev)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("Module watcher error", "error", err)
		}
	}
}

// translate maps an fsnotify event on a module file to an Event. Events for
// other files, and chmod-only events, are dropped.
func translate(event fsnotify.Event) (Event, bool) {
	name := filepath.Base(event.Name)
	if filepath.Ext(name) != domain.ModuleExt {
		return Event{}, false
	}
	id := strings.TrimSuffix(name, domain.ModuleExt)
	if !domain.ValidIdentifier(id) {
		return Event{}, false
	}

	ev := Event{Module: id, Path: event.Name}
	switch {
	case event.Has(fsnotify.Create):
		ev.Op = OpCreated
	case event.Has(fsnotify.Write):
		ev.Op = OpModified
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		ev.Op = OpRemoved
	default:
		return Event{}, false
	}
	return ev, true
}
