package driven

import "context"

// InputFetcher downloads puzzle inputs from adventofcode.com.
//
// Implementations authenticate with the user's session cookie and
// throttle themselves; the site explicitly asks automated tools to be
// polite. Optional: nil when no session is configured.
type InputFetcher interface {
	// FetchInput downloads the raw input for a year/day.
	// Returns domain.ErrNoSession when unauthenticated,
	// domain.ErrNotFound for unpublished days and
	// domain.ErrRateLimited when throttled by the server.
	FetchInput(ctx context.Context, year, day int) (string, error)
}
