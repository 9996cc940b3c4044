package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filestore "github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/file"
	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/memory"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func TestWatchRunsOnceThenOnChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputs := filestore.NewInputStore(t.TempDir())
	require.NoError(t, inputs.Put(ctx, 6, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"))

	runner := NewRunner(NewSolverRegistry(), inputs, memory.NewResultStore())
	watch := NewWatchService(runner, inputs)

	type outcome struct {
		result domain.Result
		err    error
	}
	outcomes := make(chan outcome, 4)
	done := make(chan error, 1)
	go func() {
		done <- watch.Watch(ctx, 6, func(r domain.Result, err error) {
			outcomes <- outcome{result: r, err: err}
		})
	}()

	// The day is solved once immediately.
	first := waitFor(t, outcomes)
	require.NoError(t, first.err)
	assert.Equal(t, "7", first.result.Answers.Part1)

	// Rewriting the input triggers a re-run with the new content.
	require.NoError(t, inputs.Put(ctx, 6, "bvwbjplbgvbhsrlpgdmjqwftvncz\n"))
	second := waitFor(t, outcomes)
	require.NoError(t, second.err)
	assert.Equal(t, "5", second.result.Answers.Part1)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchReportsSolverErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputs := filestore.NewInputStore(t.TempDir())
	require.NoError(t, inputs.Put(ctx, 1, "not a number\n"))

	runner := NewRunner(NewSolverRegistry(), inputs, memory.NewResultStore())
	watch := NewWatchService(runner, inputs)

	errs := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- watch.Watch(ctx, 1, func(_ domain.Result, err error) {
			errs <- err
		})
	}()

	assert.ErrorIs(t, waitFor(t, errs), domain.ErrInvalidInput)
	cancel()
	<-done
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch callback")
		panic("unreachable")
	}
}
