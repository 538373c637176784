// Package watcher reports changes of a set of files.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/glstack/glstack/pkg/logger"
)

// Watcher watches the directories of files since editors often
// replace a file instead of writing into it.
type Watcher struct {
	w      *fsnotify.Watcher
	files  map[string]struct{}
	events chan string
	log    *logger.Logger
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

const changed = fsnotify.Write | fsnotify.Create | fsnotify.Rename

func New(log *logger.Logger, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	w := &Watcher{
		w:      fw,
		files:  map[string]struct{}{},
		events: make(chan string, 8),
		log:    log,
		done:   make(chan struct{}),
	}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watcher: %w", err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err = fw.Add(d); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watcher: add %v: %w", d, err)
		}
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if event.Op&changed == 0 {
				continue
			}
			path, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := w.files[path]; !ok {
				continue
			}
			select {
			case w.events <- path:
				w.log.Debug().Str("file", path).Str("op", event.Op.String()).Msg("file changed")
			case <-w.done:
				return
			default:
				// the reader has not caught up, it will reload anyway
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watch error")
		case <-w.done:
			return
		}
	}
}

// Events emits absolute paths of changed files.
// The channel is closed after Close.
func (w *Watcher) Events() <-chan string { return w.events }

func (w *Watcher) Close() (err error) {
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
		w.wg.Wait()
	})
	return
}
