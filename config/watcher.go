package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long rapid changes are left to settle
const debounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it is written
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	getenv   func(string) string
	onChange func(*Config)
	onError  func(error)

	// Track last change time to debounce rapid changes
	mu         sync.Mutex
	lastChange time.Time
	reloads    int
}

// Watch starts watching path and calls onChange with each successfully
// reloaded config. Load and parse failures go to onError, which may be nil;
// the previous config stays in force. Watching stops when ctx is done.
func Watch(ctx context.Context, path string, getenv func(string) string, onChange func(*Config), onError func(error)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch its directory
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if onError == nil {
		onError = func(error) {}
	}
	w := &Watcher{
		watcher:  fsWatcher,
		path:     absPath,
		getenv:   getenv,
		onChange: onChange,
		onError:  onError,
	}
	go w.eventLoop(ctx)
	return w, nil
}

// eventLoop processes file system events
func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only handle write and create events on the config file itself
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			w.mu.Lock()
			if time.Since(w.lastChange) < debounce {
				w.mu.Unlock()
				continue
			}
			w.lastChange = time.Now()
			w.mu.Unlock()

			// Let the writer finish before reading
			time.Sleep(debounce)
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path, w.getenv)
	if err != nil {
		w.onError(err)
		return
	}
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()
	w.onChange(cfg)
}

// Reloads returns how many times the config has been reloaded
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
