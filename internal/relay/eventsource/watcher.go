package eventsource

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/hyperaware/doorbell-relay/internal/logging"
)

// SpoolWatcher is a development-mode event source: it watches a local spool
// directory and emits an ObjectFinalized event for every dropped snapshot,
// standing in for real bucket notifications.
type SpoolWatcher struct {
	dir     string
	prefix  string
	handler ObjectHandler
	logger  logging.Logger
}

// NewSpoolWatcher watches dir and reports new .jpg files with keys prefixed
// by prefix (typically "pictures").
func NewSpoolWatcher(dir string, prefix string, handler ObjectHandler, logger logging.Logger) *SpoolWatcher {
	return &SpoolWatcher{
		dir:     dir,
		prefix:  prefix,
		handler: handler,
		logger:  logger.With("module", "spool_watcher"),
	}
}

// Run blocks until ctx is canceled, dispatching one event per created file.
func (w *SpoolWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	w.logger.Info(ctx, "Watching spool directory", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".jpg") {
				continue
			}
			key := path.Join(w.prefix, filepath.Base(ev.Name))
			w.logger.Info(ctx, "Spooled object", "key", key)
			w.handler.HandleObjectFinalized(ctx, ObjectFinalized{Key: key})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "Watcher error", "error", err.Error())
		}
	}
}
