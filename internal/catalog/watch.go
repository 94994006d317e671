package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a custom catalog file and reloads it when it changes.
// Reloads are debounced so editors that write in several bursts trigger a
// single reload.
type Watcher struct {
	Reloads <-chan []Entry // Read-only external channel

	path    string
	reloads chan []Entry
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given catalog file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan []Entry, 1)
	return &Watcher{
		Reloads: ch,
		path:    path,
		reloads: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the catalog file's directory. Watching the directory
// rather than the file itself survives rename-based saves.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and its channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 200 * time.Millisecond
	var pendingSince time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pendingSince = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if pendingSince.IsZero() || time.Since(pendingSince) < debounce {
				continue
			}
			pendingSince = time.Time{}
			entries, err := LoadFile(w.path)
			if err != nil || len(entries) == 0 {
				continue // keep the previous catalog on a bad write
			}
			select {
			case w.reloads <- entries:
			default:
				// Drop if the consumer has not drained the last reload.
			}
		}
	}
}
