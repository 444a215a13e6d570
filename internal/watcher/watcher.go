// Package watcher monitors a source tree for changes so the CLI can re-run
// analysis while the user edits code.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory tree and reports batches of changed source
// files after a debounce quiet period.
type Watcher struct {
	fsw        *fsnotify.Watcher
	root       string
	extensions map[string]bool
	debounce   time.Duration
}

// New creates a watcher over the tree rooted at root. Only files whose
// extension appears in extensions (e.g. ".java") are reported.
func New(root string, extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[ext] = true
	}

	w := &Watcher{
		fsw:        fsw,
		root:       root,
		extensions: extMap,
		debounce:   500 * time.Millisecond,
	}

	if err := w.addDirectories(root); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks, invoking callback with the accumulated changed files each time
// the tree goes quiet for the debounce period. Returns when ctx is done.
func (w *Watcher) Run(ctx context.Context, callback func(changed []string)) error {
	defer w.fsw.Close()

	accumulated := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event, accumulated) {
				timer.Reset(w.debounce)
			}

		case _, ok := <-w.fsw.Errors:
			// Transient watch errors are not fatal.
			if !ok {
				return nil
			}

		case <-timer.C:
			if len(accumulated) == 0 {
				continue
			}
			changed := make([]string, 0, len(accumulated))
			for path := range accumulated {
				changed = append(changed, path)
			}
			accumulated = make(map[string]bool)
			callback(changed)
		}
	}
}

// handleEvent records a relevant file change and registers newly created
// directories. Returns true when the debounce timer should restart.
func (w *Watcher) handleEvent(event fsnotify.Event, accumulated map[string]bool) bool {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addDirectories(event.Name)
			return false
		}
	}

	if !w.extensions[filepath.Ext(event.Name)] {
		return false
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}

	accumulated[event.Name] = true
	return true
}

// addDirectories registers dir and every subdirectory with the underlying
// watcher. Unreadable entries are skipped.
func (w *Watcher) addDirectories(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return nil
		}
		return nil
	})
}
