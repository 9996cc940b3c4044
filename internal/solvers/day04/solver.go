// Package day04 solves Camp Cleanup: counting assignment pairs whose
// section ranges fully contain or merely overlap each other.
package day04

import (
	"context"
	"fmt"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 4.
type Solver struct{}

// New creates the day 4 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 4 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Camp Cleanup" }

// Solve counts containing pairs (part 1) and overlapping pairs (part 2).
// Containment implies overlap, so part 2 only needs the extra overlaps.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	contained, overlapping := 0, 0

	for _, line := range grids.Lines(input) {
		a, b, c, d, err := parsePair(line)
		if err != nil {
			return domain.Answers{}, err
		}

		switch {
		case (a >= c && b <= d) || (c >= a && d <= b):
			contained++
		case (c <= a && a <= d) || (a <= c && c <= b):
			overlapping++
		}
	}

	return domain.Answers{
		Part1: strconv.Itoa(contained),
		Part2: strconv.Itoa(contained + overlapping),
	}, nil
}

// parsePair parses a "p-q,r-s" assignment line into its four bounds.
func parsePair(line string) (p, q, r, s int, err error) {
	if _, scanErr := fmt.Sscanf(line, "%d-%d,%d-%d", &p, &q, &r, &s); scanErr != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: assignment pair %q", domain.ErrInvalidInput, line)
	}
	return p, q, r, s, nil
}
