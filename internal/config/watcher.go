package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/touchkey/internal/logging"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("config watcher is closed")

// DefaultDebounce coalesces the bursts of write events editors produce
// when saving a file.
const DefaultDebounce = 100 * time.Millisecond

// ReloadHandler is called with the path of a settings or layout file
// after it changes, once the debounce window has passed.
type ReloadHandler func(path string)

// Watcher watches settings and input-set files for live reload.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	handler  ReloadHandler
	debounce time.Duration
	pending  map[string]*time.Timer
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher delivering changes to handler.
func NewWatcher(handler ReloadHandler, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a file's directory and reports changes to that
// file. Watching the directory keeps the watch alive across the
// rename-and-replace saves editors perform.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsw.Add(filepath.Dir(abs))
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, t := range w.pending {
		t.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	log := logging.With("component", "config.watcher")
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "error", err)
		case <-w.done:
			return
		}
	}
}

// scheduleReload debounces events per path and invokes the handler once
// the file has settled.
func (w *Watcher) scheduleReload(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		handler := w.handler
		w.mu.Unlock()

		if closed || handler == nil {
			return
		}
		handler(path)
	})
}
