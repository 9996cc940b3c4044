package driven

import (
	"context"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

// Solver solves both parts of a daily puzzle from its raw input.
// Each day package (day01, day02, ...) implements this interface.
//
// Parsing is the solver's own responsibility; malformed input must fail
// fast with an error wrapping domain.ErrInvalidInput. Both parts are
// produced in one call because most days share the parsed representation.
type Solver interface {
	// Day returns the day number this solver handles.
	Day() int

	// Title returns the official puzzle title.
	Title() string

	// Solve computes both answers from the raw input text.
	// Long-running solvers check ctx between rounds.
	Solve(ctx context.Context, input string) (domain.Answers, error)
}

// SolverCapabilities describes solver behaviour the runner may care about.
type SolverCapabilities struct {
	// Visual indicates part 2 renders multi-line output (day 10's CRT)
	// rather than a single-line value.
	Visual bool

	// Slow indicates the solver takes noticeably longer than the rest
	// and is worth a progress hint in the TUI.
	Slow bool
}

// Capabilities is implemented by solvers with non-default behaviour.
// Solvers without it get the zero capabilities.
type Capabilities interface {
	Capabilities() SolverCapabilities
}

// CapabilitiesOf returns the solver's capabilities, or the zero value
// if it does not implement Capabilities.
func CapabilitiesOf(s Solver) SolverCapabilities {
	if c, ok := s.(Capabilities); ok {
		return c.Capabilities()
	}
	return SolverCapabilities{}
}
