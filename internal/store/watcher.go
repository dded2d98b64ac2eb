package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

// externalWatcher wakes every change stream when another process writes
// the store file. Commits of this process notify the hub directly; the
// watcher only covers writers it cannot see.
type externalWatcher struct {
	watcher *fsnotify.Watcher
	hub     *hub
	logger  *logger.Logger
	names   map[string]struct{}

	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newExternalWatcher(path string, h *hub, log *logger.Logger) (*externalWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err = fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch store directory %s: %w", dir, err)
	}

	base := filepath.Base(path)
	w := &externalWatcher{
		watcher: fw,
		hub:     h,
		logger:  log,
		names: map[string]struct{}{
			base:          {},
			base + "-wal": {},
		},
		done: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *externalWatcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.hub.publishAll()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Err(err).Str("func", "externalWatcher.run").Msg("store watcher error")
		}
	}
}

func (w *externalWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	_, ok := w.names[filepath.Base(event.Name)]
	return ok
}

func (w *externalWatcher) stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
