// Package day11 solves Monkey in the Middle: monkeys inspecting and
// throwing items according to worry-level arithmetic.
package day11

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// Rounds played per part.
const (
	roundsPart1 = 20
	roundsPart2 = 10_000
)

// operation recalculates an item's worry level on inspection.
type operation func(old int64) int64

// monkey holds items and the rules for inspecting and throwing them.
type monkey struct {
	items       []int64
	op          operation
	divisor     int64
	ifTrue      int
	ifFalse     int
	inspections int64
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 11.
type Solver struct{}

// New creates the day 11 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 11 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Monkey in the Middle" }

// Solve plays 20 rounds with the div-3 relief rule, then 10000 rounds
// keeping worry levels bounded modulo the product of all test divisors
// (the residues are all the throw tests ever look at).
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	monkeys1, err := parseMonkeys(input)
	if err != nil {
		return domain.Answers{}, err
	}
	monkeys2 := cloneMonkeys(monkeys1)

	modulus := int64(1)
	for _, m := range monkeys2 {
		modulus *= m.divisor
	}

	business1, err := play(ctx, monkeys1, roundsPart1, func(worry int64) int64 {
		return worry / 3
	})
	if err != nil {
		return domain.Answers{}, err
	}

	business2, err := play(ctx, monkeys2, roundsPart2, func(worry int64) int64 {
		return worry % modulus
	})
	if err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.FormatInt(business1, 10),
		Part2: strconv.FormatInt(business2, 10),
	}, nil
}

// play runs the given number of rounds and returns the level of monkey
// business: the product of the two highest inspection counts.
func play(ctx context.Context, monkeys []*monkey, rounds int, relief func(int64) int64) (int64, error) {
	for round := 0; round < rounds; round++ {
		if round%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		for _, m := range monkeys {
			m.inspections += int64(len(m.items))
			for _, item := range m.items {
				worry := relief(m.op(item))
				target := m.ifFalse
				if worry%m.divisor == 0 {
					target = m.ifTrue
				}
				monkeys[target].items = append(monkeys[target].items, worry)
			}
			m.items = m.items[:0]
		}
	}

	counts := make([]int64, len(monkeys))
	for i, m := range monkeys {
		counts[i] = m.inspections
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })
	if len(counts) < 2 {
		return 0, fmt.Errorf("%w: need at least two monkeys", domain.ErrInvalidInput)
	}
	return counts[0] * counts[1], nil
}

// parseMonkeys reads the blank-line separated monkey descriptions.
func parseMonkeys(input string) ([]*monkey, error) {
	blocks := grids.Blocks(input)
	monkeys := make([]*monkey, 0, len(blocks))

	for i, block := range blocks {
		if len(block) < 6 {
			return nil, fmt.Errorf("%w: monkey %d has %d lines", domain.ErrInvalidInput, i, len(block))
		}

		m := &monkey{}
		var err error

		if m.items, err = parseItems(block[1]); err != nil {
			return nil, err
		}
		if m.op, err = parseOperation(block[2]); err != nil {
			return nil, err
		}
		if m.divisor, err = lastInt64(block[3]); err != nil {
			return nil, err
		}
		ifTrue, err := lastInt64(block[4])
		if err != nil {
			return nil, err
		}
		ifFalse, err := lastInt64(block[5])
		if err != nil {
			return nil, err
		}
		m.ifTrue, m.ifFalse = int(ifTrue), int(ifFalse)

		monkeys = append(monkeys, m)
	}

	for _, m := range monkeys {
		if m.ifTrue >= len(monkeys) || m.ifFalse >= len(monkeys) {
			return nil, fmt.Errorf("%w: throw target out of range", domain.ErrInvalidInput)
		}
	}
	return monkeys, nil
}

// parseItems reads "  Starting items: 79, 98".
func parseItems(line string) ([]int64, error) {
	_, list, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("%w: items line %q", domain.ErrInvalidInput, line)
	}
	var items []int64
	for _, field := range strings.Split(list, ",") {
		item, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: items line %q", domain.ErrInvalidInput, line)
		}
		items = append(items, item)
	}
	return items, nil
}

// parseOperation reads "  Operation: new = old * 19" style lines.
// The operand is either a constant or "old".
func parseOperation(line string) (operation, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: operation %q", domain.ErrInvalidInput, line)
	}
	operator, operand := fields[len(fields)-2], fields[len(fields)-1]

	switch {
	case operator == "+" && operand == "old":
		return func(old int64) int64 { return old + old }, nil
	case operator == "*" && operand == "old":
		return func(old int64) int64 { return old * old }, nil
	case operator == "+" || operator == "*":
		value, err := strconv.ParseInt(operand, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: operation %q", domain.ErrInvalidInput, line)
		}
		if operator == "+" {
			return func(old int64) int64 { return old + value }, nil
		}
		return func(old int64) int64 { return old * value }, nil
	default:
		return nil, fmt.Errorf("%w: operation %q", domain.ErrInvalidInput, line)
	}
}

// lastInt64 returns the trailing integer of a line like
// "  Test: divisible by 23".
func lastInt64(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: line %q", domain.ErrInvalidInput, line)
	}
	value, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %q", domain.ErrInvalidInput, line)
	}
	return value, nil
}

func cloneMonkeys(monkeys []*monkey) []*monkey {
	clones := make([]*monkey, len(monkeys))
	for i, m := range monkeys {
		clone := *m
		clone.items = append([]int64(nil), m.items...)
		clones[i] = &clone
	}
	return clones
}
