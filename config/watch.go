package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-resolves a configuration file whenever it changes on disk.
// Combined with the registries' overwrite-on-register semantics this gives
// the toolkit hot reload without a restart.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// Watch starts watching the given configuration file. onChange receives
// the freshly parsed config after every write or rename; parse failures
// are delivered through onError and watching continues. The watcher stops
// when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*ExtractionConfig), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory rather than the file: editors replace files on
	// save, which would otherwise drop the watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{path: path, watcher: fw}
	go w.run(ctx, onChange, onError)
	return w, nil
}

func (w *Watcher) run(ctx context.Context, onChange func(*ExtractionConfig), onError func(error)) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			cfg, err := FromFile(w.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
