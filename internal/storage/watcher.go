// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher notifies when the state file changes underneath the running
// process, e.g. a second parley instance or a manual edit. Reload events are
// rate-limited because atomic renames and editors fire bursts of fs events
// for a single logical change.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	limiter *rate.Limiter
	onEvent func()
	done    chan struct{}
}

// NewWatcher watches the directory containing the state file and invokes
// onChange (from the watcher goroutine) at most twice per second.
func NewWatcher(statePath string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: atomic renames replace the inode,
	// which silently detaches a file-level watch.
	if err := fw.Add(filepath.Dir(statePath)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		path:    filepath.Clean(statePath),
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		onEvent: onChange,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			w.onEvent()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next poll of the
			// state file will still see a consistent snapshot.
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
