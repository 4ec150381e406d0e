package filewatch

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/yndnr/makeboot-go/internal/telemetry/logger"
)

// Watcher watches files for changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]bool
	callbacks []func(string)
	mu        sync.RWMutex
	done      chan struct{}
	stopOnce  sync.Once
	logger    logger.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(l logger.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher creates a new file watcher.
func NewWatcher(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:   fw,
		files:     make(map[string]bool),
		callbacks: make([]func(string), 0),
		done:      make(chan struct{}),
		logger:    logger.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch adds a file to watch.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(abs)
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error("failed to watch directory",
			"path", dir,
			"error", err,
		)
		return err
	}

	w.mu.Lock()
	w.files[abs] = true
	w.mu.Unlock()

	w.logger.Debug("watching file for changes",
		"dir", dir,
		"file", filepath.Base(abs),
	)
	return nil
}

// OnChange registers a callback to be called when a watched file changes.
// The callback receives the absolute path of the changed file.
func (w *Watcher) OnChange(callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run delivers change notifications until ctx is done or Stop is called.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.isWatched(event.Name) {
				continue
			}
			w.logger.Debug("watched file changed",
				"file", event.Name,
				"op", event.Op.String(),
			)
			w.notifyCallbacks(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) isWatched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[abs]
}

func (w *Watcher) notifyCallbacks(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(path)
	}
}
