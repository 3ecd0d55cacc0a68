package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/viserio/monolog-bridge/term"
)

// Watch re-applies the config file to the output whenever the file
// changes, until the context is cancelled. This is how an externally
// toggled verbosity reaches a long-running command: the gate reads the
// output's verbosity per record, so the next record after a reload
// already honors the new value.
//
// The file's directory is watched rather than the file itself so that
// editors which rename-and-replace keep triggering reloads. A file
// revision that fails to parse is ignored and the previous settings
// stay in effect.
func Watch(ctx context.Context, path string, out *term.Output) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					continue // keep last good config
				}
				_ = cfg.Apply(out)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}
