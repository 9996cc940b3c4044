package driven

import "context"

// InputStore persists raw puzzle inputs per day.
//
// The file adapter mirrors the classic input_files/dayN.txt layout;
// the memory adapter backs tests.
type InputStore interface {
	// Get returns the raw input for a day.
	// Returns domain.ErrNoInput if it has not been stored.
	Get(ctx context.Context, day int) (string, error)

	// Put stores the raw input for a day, replacing any existing one.
	Put(ctx context.Context, day int, input string) error

	// Has reports whether an input exists for a day.
	Has(ctx context.Context, day int) (bool, error)

	// Path returns where the input for a day lives (file path or a
	// placeholder for non-file stores). Used for watch mode and messages.
	Path(day int) string
}
