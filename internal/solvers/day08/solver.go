// Package day08 solves Treetop Tree House: tree visibility from outside
// a height grid and the best scenic score inside it.
package day08

import (
	"context"
	"fmt"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// tree carries a height plus the two accumulators both parts need.
type tree struct {
	height  int
	visible bool
	scenic  int
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 8.
type Solver struct{}

// New creates the day 8 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 8 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Treetop Tree House" }

// Solve sweeps every row and column in both directions. A transposed
// view shares the tree pointers, so column sweeps reuse the row logic.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	forest, err := parseForest(grids.Lines(input))
	if err != nil {
		return domain.Answers{}, err
	}

	columns := grids.Transpose(forest)
	for _, row := range forest {
		sweep(row)
		sweep(reversed(row))
	}
	for _, col := range columns {
		sweep(col)
		sweep(reversed(col))
	}

	visible, best := 0, 0
	for _, row := range forest {
		for _, t := range row {
			if t.visible {
				visible++
			}
			if t.scenic > best {
				best = t.scenic
			}
		}
	}

	return domain.Answers{
		Part1: strconv.Itoa(visible),
		Part2: strconv.Itoa(best),
	}, nil
}

// sweep processes one line of trees left to right: marks trees taller
// than everything before them as visible, and multiplies each tree's
// scenic score by its viewing distance in this direction.
func sweep(line []*tree) {
	tallest := -1
	for i, t := range line {
		if t.height > tallest {
			t.visible = true
			tallest = t.height
		}

		distance := 0
		for _, other := range line[i+1:] {
			distance++
			if other.height >= t.height {
				break
			}
		}
		if distance > 0 {
			t.scenic *= distance
		}
	}
}

func reversed(line []*tree) []*tree {
	result := make([]*tree, len(line))
	for i, t := range line {
		result[len(line)-1-i] = t
	}
	return result
}

func parseForest(lines []string) ([][]*tree, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty forest", domain.ErrInvalidInput)
	}
	forest := make([][]*tree, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: ragged row %d", domain.ErrInvalidInput, y)
		}
		forest[y] = make([]*tree, len(line))
		for x := range line {
			h := line[x]
			if h < '0' || h > '9' {
				return nil, fmt.Errorf("%w: height %q at (%d,%d)", domain.ErrInvalidInput, h, x, y)
			}
			forest[y][x] = &tree{height: int(h - '0'), scenic: 1}
		}
	}
	return forest, nil
}
