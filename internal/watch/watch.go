// Package watch monitors the recipe and plan directories for changes so
// behold --watch can re-render when files are edited.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change represents a detected change in a watched directory.
type Change struct {
	File string // Absolute path
}

// Watcher monitors directories for recipe and plan file changes using
// fsnotify. Events are debounced so a burst of editor writes produces a
// single change.
type Watcher struct {
	Dirs    []string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the given directories.
func New(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Dirs:    dirs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the directories for changes.
func (w *Watcher) Start() error {
	for _, dir := range w.Dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.changes <- Change{File: file}
				}
				return
			}

			if !isWatchedFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- Change{File: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// isWatchedFile reports whether a path is a recipe or plan file. Temp files
// from atomic writes are ignored so saves don't double-fire.
func isWatchedFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasSuffix(base, ".tmp") {
		return false
	}
	return strings.HasSuffix(base, ".md") || strings.HasSuffix(base, ".plan.toml")
}
