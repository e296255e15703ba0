package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/driftnote/driftnote/internal/logging"
)

// settingsWatcher notifies the app when config.toml changes on disk, so edits
// made outside the app reach the frontend without a restart. It watches the
// parent directory rather than the file: most editors replace the file on
// save, which would silently drop a direct file watch.
type settingsWatcher struct {
	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

func newSettingsWatcher(configPath string, onChange func(), log *logging.Logger) (*settingsWatcher, error) {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	sw := &settingsWatcher{
		watcher: w,
		done:    make(chan struct{}),
	}
	go sw.run(filepath.Base(configPath), onChange, log)
	return sw, nil
}

func (sw *settingsWatcher) run(fileName string, onChange func(), log *logging.Logger) {
	defer close(sw.done)

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("settings file changed")
			onChange()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Debug().Err(err).Msg("settings watcher error")
		}
	}
}

// Stop closes the watcher and waits for the event loop to drain.
func (sw *settingsWatcher) Stop() {
	sw.stopOnce.Do(func() {
		_ = sw.watcher.Close()
		<-sw.done
	})
}
