package driving

import (
	"context"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

// Runner executes puzzle solvers and records results.
type Runner interface {
	// Run solves a single day: loads its input, times the solver,
	// verifies against accepted answers and persists the result.
	Run(ctx context.Context, day int) (*domain.Result, error)

	// RunAll solves every registered day in order (the solve_all
	// behaviour). onResult, if non-nil, is called after each day
	// completes; it runs on the runner's goroutine. Days whose input
	// is missing are skipped with a logged warning rather than
	// aborting the batch.
	RunAll(ctx context.Context, onResult func(domain.Result)) ([]domain.Result, error)

	// Accept records a run's answers as the accepted answers for its day.
	Accept(ctx context.Context, day int) error
}
