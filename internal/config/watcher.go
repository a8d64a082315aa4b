package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the bursts of filesystem events editors
// emit for a single save.
const defaultDebounce = 100 * time.Millisecond

// Handler is called with the freshly loaded preferences after the
// watched file changes.
type Handler func(Config)

// Watcher reloads a preferences file when it changes on disk. It
// watches the file's directory so saves that replace the file (the
// write-then-rename editors do) are still seen.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration

	fsw      *fsnotify.Watcher
	handlers []Handler

	closeCh chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewWatcher creates a watcher for the given preferences file.
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		path:     absPath,
		debounce: defaultDebounce,
		closeCh:  make(chan struct{}),
	}, nil
}

// OnChange registers a handler for reloaded preferences.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins watching the preferences file.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.closeCh = make(chan struct{})
	w.running = true

	w.wg.Add(1)
	go w.processLoop()
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	w.fsw.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// processLoop collects file events and reloads once they settle.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	var pending bool
	var pendingAt time.Time

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			pending = true
			pendingAt = time.Now()

		case now := <-ticker.C:
			if pending && now.Sub(pendingAt) >= w.debounce {
				pending = false
				w.reload()
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// matches reports whether an event concerns the watched file.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}

// reload loads the file and notifies handlers. Load failures are
// swallowed; the previous preferences stay in effect.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(cfg)
	}
}
