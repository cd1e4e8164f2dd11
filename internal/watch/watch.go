// Package watch re-runs a render whenever any of the watched files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay coalesces the bursts of events editors produce on save.
const debounceDelay = 250 * time.Millisecond

// RenderFunc performs one full render pass.
type RenderFunc func() error

// Run watches the given files and calls render after each change, until ctx
// is canceled. Render failures are logged and watching continues, so a
// half-edited document does not kill the session. The directories
// containing the files are watched rather than the files themselves:
// editors that write via rename would otherwise detach the watch.
func Run(ctx context.Context, logger zerolog.Logger, paths []string, render RenderFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool, len(paths))

	for _, path := range paths {
		if path == "" {
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve watch path: %w", err)
		}

		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	logger.Info().Int("files", len(targets)).Msg("watching for changes")

	// The timer is armed on the first relevant event and re-armed by each
	// follow-up, so a save burst triggers a single render.
	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(event, targets) {
				continue
			}

			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			debounce.Reset(debounceDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logger.Error().Err(err).Msg("watch error")

		case <-debounce.C:
			if err := render(); err != nil {
				logger.Error().Err(err).Msg("render failed")
			} else {
				logger.Info().Msg("re-rendered")
			}
		}
	}
}

func relevant(event fsnotify.Event, targets map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	return targets[abs]
}
