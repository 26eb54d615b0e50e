package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay absorbs the burst of events editors emit while rewriting a
// file, so a change is reported once the write has settled.
const debounceDelay = 250 * time.Millisecond

// Watch reports changes to the settings file until ctx is done. The watcher
// observes the parent directory because many tools replace the file rather
// than write it in place.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(ch)

		// The debounce timer is drained inside this loop, never from its own
		// goroutine, so a pending fire cannot race the channel close.
		debounce := time.NewTimer(debounceDelay)
		if !debounce.Stop() {
			<-debounce.C
		}
		pending := false

		base := filepath.Base(s.filePath)
		for {
			select {
			case <-ctx.Done():
				return
			case <-debounce.C:
				pending = false
				select {
				case ch <- struct{}{}:
				default:
				}
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					if pending && !debounce.Stop() {
						<-debounce.C
					}
					debounce.Reset(debounceDelay)
					pending = true
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch, nil
}
