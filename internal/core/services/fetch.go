package services

import (
	"context"
	"fmt"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
	"github.com/puzzlekit/aoc-cli/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.FetchService = (*FetchService)(nil)

// FetchService downloads puzzle inputs and caches them in the input store.
type FetchService struct {
	registry   *SolverRegistry
	inputStore driven.InputStore
	fetcher    driven.InputFetcher
}

// NewFetchService creates a new fetch service. fetcher may be nil when
// no session cookie is configured; fetching then reports ErrNoSession.
func NewFetchService(
	registry *SolverRegistry,
	inputStore driven.InputStore,
	fetcher driven.InputFetcher,
) *FetchService {
	return &FetchService{
		registry:   registry,
		inputStore: inputStore,
		fetcher:    fetcher,
	}
}

// Fetch ensures the input for a day is available locally.
func (f *FetchService) Fetch(ctx context.Context, day int, force bool) (string, bool, error) {
	if !f.registry.Has(day) {
		return "", false, fmt.Errorf("%w: day %d", domain.ErrInvalidDay, day)
	}

	if !force {
		has, err := f.inputStore.Has(ctx, day)
		if err != nil {
			return "", false, fmt.Errorf("day %d: %w", day, err)
		}
		if has {
			logger.Debug("day %d: input already cached at %s", day, f.inputStore.Path(day))
			return f.inputStore.Path(day), false, nil
		}
	}

	if f.fetcher == nil {
		return "", false, fmt.Errorf("day %d: %w", day, domain.ErrNoSession)
	}

	logger.Info("fetching input for day %d", day)
	input, err := f.fetcher.FetchInput(ctx, domain.Year, day)
	if err != nil {
		return "", false, fmt.Errorf("day %d: %w", day, err)
	}
	if err := f.inputStore.Put(ctx, day, input); err != nil {
		return "", false, fmt.Errorf("day %d: storing input: %w", day, err)
	}
	return f.inputStore.Path(day), true, nil
}

// FetchAll fetches inputs for every registered day. Days that fail are
// reported together instead of aborting the sweep, except for
// cancellation, which stops it.
func (f *FetchService) FetchAll(ctx context.Context, force bool) (int, []error) {
	fetched := 0
	var errs []error
	for _, day := range f.registry.Days() {
		_, downloaded, err := f.Fetch(ctx, day, force)
		if err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if downloaded {
			fetched++
		}
	}
	return fetched, errs
}
