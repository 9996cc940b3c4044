package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/memory"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

// fakeFetcher serves canned inputs and records the days requested.
type fakeFetcher struct {
	inputs map[int]string
	calls  []int
	err    error
}

func (f *fakeFetcher) FetchInput(_ context.Context, year, day int) (string, error) {
	f.calls = append(f.calls, day)
	if f.err != nil {
		return "", f.err
	}
	input, ok := f.inputs[day]
	if !ok {
		return "", fmt.Errorf("%w: %d day %d", domain.ErrNotFound, year, day)
	}
	return input, nil
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	ctx := context.Background()
	inputs := memory.NewInputStore()
	fetcher := &fakeFetcher{inputs: map[int]string{3: "vJrwpWtwJgWrhcsFMMfFFhFp\n"}}
	svc := NewFetchService(NewSolverRegistry(), inputs, fetcher)

	path, downloaded, err := svc.Fetch(ctx, 3, false)
	require.NoError(t, err)
	assert.True(t, downloaded)
	assert.Equal(t, inputs.Path(3), path)

	stored, err := inputs.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "vJrwpWtwJgWrhcsFMMfFFhFp\n", stored)

	// Second fetch reuses the cache.
	_, downloaded, err = svc.Fetch(ctx, 3, false)
	require.NoError(t, err)
	assert.False(t, downloaded)
	assert.Equal(t, []int{3}, fetcher.calls)

	// Force re-downloads.
	_, downloaded, err = svc.Fetch(ctx, 3, true)
	require.NoError(t, err)
	assert.True(t, downloaded)
	assert.Equal(t, []int{3, 3}, fetcher.calls)
}

func TestFetchErrors(t *testing.T) {
	ctx := context.Background()
	inputs := memory.NewInputStore()

	svc := NewFetchService(NewSolverRegistry(), inputs, &fakeFetcher{})
	_, _, err := svc.Fetch(ctx, 16, false)
	assert.ErrorIs(t, err, domain.ErrInvalidDay)

	_, _, err = svc.Fetch(ctx, 1, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Without a fetcher, a missing input needs a session.
	svc = NewFetchService(NewSolverRegistry(), inputs, nil)
	_, _, err = svc.Fetch(ctx, 1, false)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// A cached input needs no fetcher at all.
	require.NoError(t, inputs.Put(ctx, 1, "100\n"))
	_, downloaded, err := svc.Fetch(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, downloaded)
}

func TestFetchAllCollectsFailures(t *testing.T) {
	ctx := context.Background()
	inputs := memory.NewInputStore()
	fetcher := &fakeFetcher{inputs: map[int]string{1: "100\n", 2: "A Y\n"}}
	svc := NewFetchService(NewSolverRegistry(), inputs, fetcher)

	fetched, errs := svc.FetchAll(ctx, false)
	assert.Equal(t, 2, fetched)
	// Every other registered day fails with not-found.
	assert.Len(t, errs, 14)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}
