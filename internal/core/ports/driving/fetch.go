package driving

import "context"

// FetchService downloads and caches puzzle inputs.
type FetchService interface {
	// Fetch ensures the input for a day is available locally.
	// Returns the storage path and whether a download happened
	// (false when the cached copy was reused and force was not set).
	Fetch(ctx context.Context, day int, force bool) (path string, downloaded bool, err error)

	// FetchAll fetches inputs for every registered day, skipping days
	// already present. Individual failures are collected, not fatal.
	FetchAll(ctx context.Context, force bool) (fetched int, errs []error)
}
