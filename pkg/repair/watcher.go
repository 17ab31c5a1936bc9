// Package repair is a boundary adapter, not part of the transactional
// core: it watches an install prefix's metadata directory for changes made
// outside any transaction this process ran (most commonly a second,
// concurrently running installer invocation, which the registry and
// transaction layers make no attempt to serialize against) and reports them
// through a notify.Sink so an operator can decide whether to re-run the
// registry's own consistency checks.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package repair

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"toolchainctl/pkg/notify"
	"toolchainctl/pkg/prefix"
)

// ⭐ CORE-009: Metadata watcher - 🔍 Out-of-band change detection

// Watcher observes a prefix's metadata directory and reports filesystem
// events through a sink. It never mutates anything; it exists purely to
// surface the possibility that the registry's on-disk state was touched by
// something other than this process.
type Watcher struct {
	fsw  *fsnotify.Watcher
	sink notify.Sink
	done chan struct{}
}

// Watch starts watching p's metadata directory, reporting every event it
// observes through sink as an EventWarning notification. The returned
// Watcher must be closed by the caller.
func Watch(p prefix.Prefix, sink notify.Sink) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("repair: cannot start metadata watcher: %w", err)
	}
	metaDir := p.AbsPath(p.MetadataRootRel())
	if err := fsw.Add(metaDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("repair: cannot watch %s: %w", metaDir, err)
	}
	if sink == nil {
		sink = notify.NopSink
	}

	w := &Watcher{fsw: fsw, sink: sink, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.sink.Notify(notify.Notification{
				Kind:   notify.EventWarning,
				Path:   event.Name,
				Detail: fmt.Sprintf("metadata directory changed out of band: %s", event.Op),
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sink.Notify(notify.Notification{
				Kind:   notify.EventWarning,
				Detail: fmt.Sprintf("metadata watcher error: %v", err),
			})
		}
	}
}

// Close stops the watcher and waits for its event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
