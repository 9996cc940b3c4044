package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
	"github.com/puzzlekit/aoc-cli/internal/logger"
)

// Ensure Runner implements the interface.
var _ driving.Runner = (*Runner)(nil)

// Runner executes puzzle solvers, times them and records the outcome.
type Runner struct {
	registry    *SolverRegistry
	inputStore  driven.InputStore
	resultStore driven.ResultStore
	now         func() time.Time
}

// NewRunner creates a new runner service.
func NewRunner(
	registry *SolverRegistry,
	inputStore driven.InputStore,
	resultStore driven.ResultStore,
) *Runner {
	return &Runner{
		registry:    registry,
		inputStore:  inputStore,
		resultStore: resultStore,
		now:         time.Now,
	}
}

// Run solves a single day and persists the result.
func (r *Runner) Run(ctx context.Context, day int) (*domain.Result, error) {
	solver, err := r.registry.Solver(day)
	if err != nil {
		return nil, err
	}

	input, err := r.inputStore.Get(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	logger.Debug("running day %d (%s)", day, solver.Title())
	start := r.now()
	answers, err := solver.Solve(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	result := &domain.Result{
		ID:       uuid.NewString(),
		Puzzle:   domain.Puzzle{Year: domain.Year, Day: day, Title: solver.Title()},
		Answers:  answers,
		Duration: r.now().Sub(start),
		RanAt:    start,
	}
	result.Verification = r.verify(ctx, day, answers)

	if err := r.resultStore.SaveResult(ctx, result); err != nil {
		return nil, fmt.Errorf("day %d: saving result: %w", day, err)
	}
	return result, nil
}

// verify compares answers against the accepted ones, if any exist.
func (r *Runner) verify(ctx context.Context, day int, answers domain.Answers) domain.Verification {
	accepted, err := r.resultStore.Accepted(ctx, day)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.VerifyNone
	case err != nil:
		logger.Warn("day %d: loading accepted answers: %v", day, err)
		return domain.VerifyNone
	case accepted.Equal(answers):
		return domain.VerifyMatch
	default:
		return domain.VerifyMismatch
	}
}

// RunAll solves every registered day in order. Days without a stored
// input are skipped. Any other failure aborts the batch.
func (r *Runner) RunAll(ctx context.Context, onResult func(domain.Result)) ([]domain.Result, error) {
	var results []domain.Result
	for _, day := range r.registry.Days() {
		result, err := r.Run(ctx, day)
		if errors.Is(err, domain.ErrNoInput) {
			logger.Warn("day %d: no input stored, skipping (try 'aoc fetch %d')", day, day)
			continue
		}
		if err != nil {
			return results, err
		}
		results = append(results, *result)
		if onResult != nil {
			onResult(*result)
		}
	}
	return results, nil
}

// Accept records the most recent run's answers as accepted for the day.
func (r *Runner) Accept(ctx context.Context, day int) error {
	runs, err := r.resultStore.ResultsByDay(ctx, day)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	if len(runs) == 0 {
		return fmt.Errorf("day %d: no recorded runs: %w", day, domain.ErrNotFound)
	}

	latest := runs[0]
	if latest.Answers.IsZero() {
		return fmt.Errorf("day %d: latest run has no answers: %w", day, domain.ErrInvalidInput)
	}
	if err := r.resultStore.Accept(ctx, day, latest.Answers); err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	logger.Debug("day %d: accepted answers from run %s", day, latest.ID)
	return nil
}
