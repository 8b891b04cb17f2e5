package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the tuning file when it changes on disk. The fsnotify
// goroutine only publishes a pending snapshot; the game loop adopts it at a
// frame boundary through Pending.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	mu      sync.Mutex
	pending *Tuning

	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches path's directory for writes to the tuning file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Pending returns the most recent reloaded tuning, once, or nil when
// nothing new arrived since the last call.
func (w *Watcher) Pending() *Tuning {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.pending
	w.pending = nil
	return t
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// editors fire bursts of events per save
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			t, err := Load(w.path)
			if err != nil {
				select {
				case w.Errors <- err:
				default:
				}
				continue
			}
			w.mu.Lock()
			w.pending = &t
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
