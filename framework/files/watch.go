package files

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the quiet period after the last write before onChange fires.
var Debounce = 100 * time.Millisecond

// Watch calls onChange whenever the file at path is written or replaced.
// The parent directory is watched so editors that save by rename are picked up too.
// Watching stops when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}

				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != abs {
					continue
				}

				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}

				if timer == nil {
					timer = time.AfterFunc(Debounce, onChange)
				} else {
					timer.Reset(Debounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				log.Println("File watcher error:", err)
			}
		}
	}()

	return nil
}
