package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testResult(id string, day int, ranAt time.Time) *domain.Result {
	return &domain.Result{
		ID:           id,
		Puzzle:       domain.Puzzle{Year: 2022, Day: day, Title: "Calorie Counting"},
		Answers:      domain.Answers{Part1: "24000", Part2: "45000"},
		Duration:     3 * time.Millisecond,
		RanAt:        ranAt,
		Verification: domain.VerifyNone,
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestSaveAndQueryResults(t *testing.T) {
	ctx := context.Background()
	results := newTestStore(t).ResultStore()

	base := time.Date(2022, 12, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, results.SaveResult(ctx, testResult("run-1", 1, base)))
	require.NoError(t, results.SaveResult(ctx, testResult("run-2", 1, base.Add(time.Hour))))
	require.NoError(t, results.SaveResult(ctx, testResult("run-3", 2, base.Add(2*time.Hour))))

	byDay, err := results.ResultsByDay(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byDay, 2)
	assert.Equal(t, "run-2", byDay[0].ID)
	assert.Equal(t, "run-1", byDay[1].ID)
	assert.Equal(t, "Calorie Counting", byDay[0].Puzzle.Title)
	assert.Equal(t, 3*time.Millisecond, byDay[0].Duration)
	assert.Equal(t, domain.VerifyNone, byDay[0].Verification)

	all, err := results.Results(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "run-3", all[0].ID)

	empty, err := results.ResultsByDay(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAcceptedAnswers(t *testing.T) {
	ctx := context.Background()
	results := newTestStore(t).ResultStore()

	_, err := results.Accepted(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, results.Accept(ctx, 1, domain.Answers{Part1: "24000", Part2: "45000"}))
	accepted, err := results.Accepted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{Part1: "24000", Part2: "45000"}, accepted)

	// Accept replaces the previous record.
	require.NoError(t, results.Accept(ctx, 1, domain.Answers{Part1: "70000", Part2: "45000"}))
	accepted, err = results.Accepted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "70000", accepted.Part1)
}
