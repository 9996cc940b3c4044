package driving

import "github.com/puzzlekit/aoc-cli/internal/core/domain"

// SolverRegistry provides information about the bundled solvers.
// Adding a day means registering one more solver package; nothing else
// in the application changes (the plugin model).
type SolverRegistry interface {
	// List returns all registered puzzles in day order.
	List() []domain.Puzzle

	// Days returns the registered day numbers in ascending order.
	Days() []int

	// Has reports whether a solver is registered for the day.
	Has(day int) bool

	// Describe returns the puzzle metadata for a day.
	// Returns domain.ErrInvalidDay for unregistered days.
	Describe(day int) (domain.Puzzle, error)
}
