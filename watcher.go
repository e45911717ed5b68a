package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DirWatcher turns fsnotify events for images in one directory into rescan
// requests. Requests are coalesced: at most one is pending at a time.
type DirWatcher struct {
	dir       string
	match     func(name string) bool
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	stopChan  chan struct{}
	done      chan struct{}
	log       zerolog.Logger

	mu      sync.Mutex
	running bool
}

// NewDirWatcher creates a watcher for dir reporting changes to files for
// which match returns true.
func NewDirWatcher(dir string, match func(name string) bool, log zerolog.Logger) (*DirWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &DirWatcher{
		dir:       dir,
		match:     match,
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		log:       log.With().Str("component", "watcher").Str("directory", dir).Logger(),
	}, nil
}

// Changes delivers a value whenever the set of images may have changed.
func (w *DirWatcher) Changes() <-chan struct{} {
	return w.changes
}

// relevant reports whether an event can change the image list. Writes to
// an existing file leave the list alone.
func (w *DirWatcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return w.match(filepath.Base(event.Name))
}

func (w *DirWatcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
		// a rescan is already pending
	}
}

// Start runs the event loop in its own goroutine.
func (w *DirWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if w.relevant(event) {
					w.log.Debug().Str("file", event.Name).Stringer("op", event.Op).Msg("image set changed")
					w.notify()
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				w.log.Error().Err(err).Msg("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	w.log.Info().Msg("watching directory")
	return nil
}

// Stop halts the event loop and releases the fsnotify watcher.
func (w *DirWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		if err := w.fsWatcher.Close(); err != nil {
			w.log.Error().Err(err).Msg("error closing fsnotify watcher")
		}
		return
	}

	close(w.stopChan)
	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		w.log.Error().Err(err).Msg("error closing fsnotify watcher")
	}
	w.running = false
}
