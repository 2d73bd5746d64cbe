package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports file changes under a tree's directories. Changed file
// paths arrive on Events; watch failures on Errors.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	exts    map[string]bool
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches every directory of tree. exts filters reported paths
// by lowercase extension (".png", ".yaml"); with no exts every change is
// reported. Rapid repeat events for the same path are coalesced.
func NewWatcher(tree *FileTree, exts ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	var dirs []string
	tree.Walk(func(n *FileTree) bool {
		if n.Dir {
			dirs = append(dirs, n.Path)
		}
		return true
	})
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = true
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		exts:    extSet,
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed by the delivery
// goroutine once it drains, so pending receives terminate cleanly.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run owns Events and Errors: only it sends on them, and it closes them on
// exit. Sends race Close, so each one also selects on closeCh.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) wants(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return w.exts[strings.ToLower(filepath.Ext(path))]
}
