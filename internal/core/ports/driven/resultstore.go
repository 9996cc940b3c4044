package driven

import (
	"context"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

// ResultStore persists solver runs and the accepted answers per day.
//
// Accepted answers are the ones adventofcode.com confirmed as correct;
// the runner verifies fresh runs against them, which is how the original
// per-day assertions survive refactoring.
type ResultStore interface {
	// SaveResult records a run.
	SaveResult(ctx context.Context, result *domain.Result) error

	// ResultsByDay returns all recorded runs for a day, newest first.
	ResultsByDay(ctx context.Context, day int) ([]domain.Result, error)

	// Results returns all recorded runs, newest first.
	Results(ctx context.Context) ([]domain.Result, error)

	// Accepted returns the accepted answers for a day.
	// Returns domain.ErrNotFound when none have been recorded.
	Accepted(ctx context.Context, day int) (domain.Answers, error)

	// Accept records answers as the accepted ones for a day,
	// replacing any previous record.
	Accept(ctx context.Context, day int, answers domain.Answers) error
}
