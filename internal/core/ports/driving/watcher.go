package driving

import (
	"context"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

// Watcher re-runs a day's solver whenever its input file changes.
type Watcher interface {
	// Watch blocks until ctx is cancelled, invoking onResult after
	// every (re)run. The day is solved once immediately on start.
	Watch(ctx context.Context, day int, onResult func(domain.Result, error)) error
}
