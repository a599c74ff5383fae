// Package watch re-runs a callback when files below a directory tree change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/semcommit/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

// SkipFunc reports whether a path, relative to the watched root with forward
// slashes, should not trigger the callback.
type SkipFunc func(rel string) bool

// TreeWatcher watches every directory of a tree. fsnotify is not recursive, so
// each directory is added individually and new directories are picked up as
// they are created.
type TreeWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	skip     SkipFunc
	onChange func(ctx context.Context)
	logger   *logrus.Entry
}

// NewTreeWatcher creates a watcher for root. The .git directory is always
// skipped; skip may exclude further paths and can be nil.
func NewTreeWatcher(root string, debounce time.Duration, skip SkipFunc, onChange func(ctx context.Context)) (*TreeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &TreeWatcher{
		watcher:  watcher,
		root:     root,
		debounce: debounce,
		skip:     skip,
		onChange: onChange,
		logger:   logging.NewLogger("watch"),
	}

	if err := w.addTree(root); err != nil {
		watcher.Close()
		return nil, err
	}
	return w, nil
}

// addTree adds dir and every directory below it that is not skipped.
func (w *TreeWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Directories can vanish between the event and the walk.
			if os.IsNotExist(err) && path != w.root {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.ignored(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		w.logger.Debugf("Watching directory: %s", path)
		return nil
	})
}

// ignored reports whether an absolute path is inside .git or excluded by skip.
func (w *TreeWatcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)
	if rel == ".git" || strings.HasPrefix(rel, ".git/") {
		return true
	}
	return w.skip != nil && w.skip(rel)
}

// Start processes events until ctx is cancelled. Bursts of events are
// coalesced into a single callback once no event arrived for the debounce
// period.
func (w *TreeWatcher) Start(ctx context.Context) {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.ignored(event.Name) {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.WithError(err).Warnf("Failed to watch new directory %s", event.Name)
					}
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close stops the watcher and releases resources.
func (w *TreeWatcher) Close() error {
	return w.watcher.Close()
}
