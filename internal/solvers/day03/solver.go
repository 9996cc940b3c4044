// Package day03 solves Rucksack Reorganization: finding items shared
// between rucksack compartments and between groups of three elves.
package day03

import (
	"context"
	"fmt"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
	"github.com/puzzlekit/aoc-cli/internal/sets"
)

const groupSize = 3

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 3.
type Solver struct{}

// New creates the day 3 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 3 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Rucksack Reorganization" }

// Solve sums the priorities of each rucksack's duplicated item (part 1)
// and of each three-elf group's badge item (part 2).
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	lines := grids.Lines(input)
	if len(lines)%groupSize != 0 {
		return domain.Answers{}, fmt.Errorf("%w: %d rucksacks is not a multiple of %d",
			domain.ErrInvalidInput, len(lines), groupSize)
	}

	sum1 := 0
	rucksacks := make([]sets.Set[rune], 0, len(lines))

	for _, line := range lines {
		if len(line)%2 != 0 || line == "" {
			return domain.Answers{}, fmt.Errorf("%w: rucksack %q has odd size",
				domain.ErrInvalidInput, line)
		}

		left := sets.FromString(line[:len(line)/2])
		right := sets.FromString(line[len(line)/2:])

		shared, ok := left.Intersect(right).Only()
		if !ok {
			return domain.Answers{}, fmt.Errorf("%w: rucksack %q has no single shared item",
				domain.ErrInvalidInput, line)
		}
		priority, err := itemPriority(shared)
		if err != nil {
			return domain.Answers{}, err
		}
		sum1 += priority

		rucksacks = append(rucksacks, left.Union(right))
	}

	sum2 := 0
	for i := 0; i < len(rucksacks); i += groupSize {
		badge, ok := sets.IntersectAll(rucksacks[i : i+groupSize]...).Only()
		if !ok {
			return domain.Answers{}, fmt.Errorf("%w: group %d has no single badge",
				domain.ErrInvalidInput, i/groupSize)
		}
		priority, err := itemPriority(badge)
		if err != nil {
			return domain.Answers{}, err
		}
		sum2 += priority
	}

	return domain.Answers{
		Part1: strconv.Itoa(sum1),
		Part2: strconv.Itoa(sum2),
	}, nil
}

// itemPriority maps a-z to 1-26 and A-Z to 27-52.
func itemPriority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: item %q", domain.ErrInvalidInput, item)
	}
}
