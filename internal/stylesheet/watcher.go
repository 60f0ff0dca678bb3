package stylesheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a stylesheet when its file changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(Sheet, error)
	done     chan struct{}
}

// Watch starts watching path. onChange is called from the watcher's
// goroutine with the reloaded sheet, or with the load error.
//
// The parent directory is watched rather than the file so that editors
// which replace the file on save are still picked up.
func Watch(path string, onChange func(Sheet, error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !shouldReload(w.path) {
				continue
			}
			w.onChange(Load(w.path))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onChange(Sheet{}, fmt.Errorf("watch stylesheet: %w", err))
		}
	}
}

// shouldReload is false while the file exists but is empty, as it is
// between an editor truncating it and writing the new contents.
func shouldReload(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Size() > 0
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
