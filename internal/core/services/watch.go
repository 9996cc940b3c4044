package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
	"github.com/puzzlekit/aoc-cli/internal/logger"
)

// debounceDelay coalesces the bursts of write events editors produce
// when saving a file.
const debounceDelay = 200 * time.Millisecond

// Ensure WatchService implements the interface.
var _ driving.Watcher = (*WatchService)(nil)

// WatchService re-runs a day's solver whenever its input file changes.
type WatchService struct {
	runner     driving.Runner
	inputStore driven.InputStore
}

// NewWatchService creates a new watch service.
func NewWatchService(runner driving.Runner, inputStore driven.InputStore) *WatchService {
	return &WatchService{runner: runner, inputStore: inputStore}
}

// Watch solves the day once, then blocks re-solving it on every input
// change until ctx is cancelled. The input's directory is watched
// rather than the file itself so editors that replace the file on save
// do not break the watch.
func (w *WatchService) Watch(ctx context.Context, day int, onResult func(domain.Result, error)) error {
	inputPath := w.inputStore.Path(day)
	if inputPath == "" {
		return fmt.Errorf("%w: day %d input has no watchable path", domain.ErrNoInput, day)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("watching %s for changes to %s", dir, filepath.Base(inputPath))

	w.runOnce(ctx, day, onResult)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(inputPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			logger.Debug("day %d: input changed, re-running", day)
			w.runOnce(ctx, day, onResult)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *WatchService) runOnce(ctx context.Context, day int, onResult func(domain.Result, error)) {
	result, err := w.runner.Run(ctx, day)
	if onResult == nil {
		return
	}
	if err != nil {
		onResult(domain.Result{}, err)
		return
	}
	onResult(*result, nil)
}
