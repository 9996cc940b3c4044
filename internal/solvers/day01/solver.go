// Package day01 solves Calorie Counting: elves carry snacks listed as
// blank-line separated groups of calorie counts.
package day01

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 1.
type Solver struct{}

// New creates the day 1 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 1 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Calorie Counting" }

// Solve sums calories per elf. Part 1 is the largest total, part 2 the
// sum of the top three.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	totals, err := elfTotals(input)
	if err != nil {
		return domain.Answers{}, err
	}
	if len(totals) < 3 {
		return domain.Answers{}, fmt.Errorf("%w: need at least 3 elves, got %d",
			domain.ErrInvalidInput, len(totals))
	}

	sort.Sort(sort.Reverse(sort.IntSlice(totals)))

	return domain.Answers{
		Part1: strconv.Itoa(totals[0]),
		Part2: strconv.Itoa(totals[0] + totals[1] + totals[2]),
	}, nil
}

// elfTotals returns the summed calories carried by each elf.
func elfTotals(input string) ([]int, error) {
	blocks := grids.Blocks(input)
	totals := make([]int, 0, len(blocks))

	for _, block := range blocks {
		total := 0
		for _, line := range block {
			calories, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: calorie line %q", domain.ErrInvalidInput, line)
			}
			total += calories
		}
		totals = append(totals, total)
	}
	return totals, nil
}
