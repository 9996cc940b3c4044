// Package day09 solves Rope Bridge: simulating knots following each
// other and counting positions the tail visits.
package day09

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// Rope lengths for the two parts.
const (
	shortRope = 2
	longRope  = 10
)

// step is a single unit move of the rope's head.
type step struct {
	dx, dy int
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 9.
type Solver struct{}

// New creates the day 9 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 9 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Rope Bridge" }

// Solve simulates both rope lengths over the same motion list.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	steps, err := parseSteps(grids.Lines(input))
	if err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.Itoa(tailVisits(steps, shortRope)),
		Part2: strconv.Itoa(tailVisits(steps, longRope)),
	}, nil
}

// parseSteps expands "R 4" style motions into unit steps.
func parseSteps(lines []string) ([]step, error) {
	var steps []step
	for _, line := range lines {
		dir, countStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: motion %q", domain.ErrInvalidInput, line)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: motion %q", domain.ErrInvalidInput, line)
		}

		var unit step
		switch dir {
		case "L":
			unit.dx = -1
		case "R":
			unit.dx = 1
		case "U":
			unit.dy = 1
		case "D":
			unit.dy = -1
		default:
			return nil, fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, dir)
		}

		for i := 0; i < count; i++ {
			steps = append(steps, unit)
		}
	}
	return steps, nil
}

// tailVisits returns how many positions the last knot of a rope with
// the given number of knots visits at least once.
func tailVisits(steps []step, knots int) int {
	rope := make([]grids.Point, knots)
	visited := map[grids.Point]struct{}{rope[knots-1]: {}}

	for _, st := range steps {
		rope[0].X += st.dx
		rope[0].Y += st.dy
		for i := 1; i < knots; i++ {
			follow(rope[i-1], &rope[i])
		}
		visited[rope[knots-1]] = struct{}{}
	}
	return len(visited)
}

// follow moves tail one step towards head when they are no longer
// touching (diagonally adjacent counts as touching).
func follow(head grids.Point, tail *grids.Point) {
	dx, dy := head.X-tail.X, head.Y-tail.Y
	if abs(dx) < 2 && abs(dy) < 2 {
		return
	}
	tail.X += sign(dx)
	tail.Y += sign(dy)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
