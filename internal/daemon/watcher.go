package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// dataWatcher forwards relevant data-directory file events to the
// daemon's trigger. Debouncing happens in the daemon loop, not here.
type dataWatcher struct {
	watcher *fsnotify.Watcher
	log     *slog.Logger
	trigger func(reason string)
}

func newDataWatcher(dir string, log *slog.Logger, trigger func(string)) (*dataWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch data directory %s: %w", dir, err)
	}
	return &dataWatcher{watcher: watcher, log: log, trigger: trigger}, nil
}

func (w *dataWatcher) watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isRecordFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("data file changed", "file", event.Name, "op", event.Op.String())
			w.trigger("data change: " + filepath.Base(event.Name))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("file watcher error", "error", err)
		}
	}
}

func (w *dataWatcher) close() {
	_ = w.watcher.Close()
}

// isRecordFile reports whether the path has a record file extension
// the loader would pick up.
func isRecordFile(name string) bool {
	switch filepath.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
