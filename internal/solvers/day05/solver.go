// Package day05 solves Supply Stacks: rearranging crate stacks with a
// crane that moves crates one at a time (part 1) or in bulk (part 2).
package day05

import (
	"context"
	"fmt"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// move is a single crane instruction with 0-based stack indices.
type move struct {
	count, from, to int
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 5.
type Solver struct{}

// New creates the day 5 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 5 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Supply Stacks" }

// Solve replays the moves with both crane models and reports the crates
// ending up on top of each stack.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	blocks := grids.Blocks(input)
	if len(blocks) != 2 {
		return domain.Answers{}, fmt.Errorf("%w: expected drawing and moves separated by a blank line",
			domain.ErrInvalidInput)
	}

	stacks1, err := parseStacks(blocks[0])
	if err != nil {
		return domain.Answers{}, err
	}
	stacks2 := cloneStacks(stacks1)

	moves, err := parseMoves(blocks[1], len(stacks1))
	if err != nil {
		return domain.Answers{}, err
	}

	for _, m := range moves {
		moveOneByOne(stacks1, m)
		moveInBulk(stacks2, m)
	}

	return domain.Answers{
		Part1: topCrates(stacks1),
		Part2: topCrates(stacks2),
	}, nil
}

// parseStacks reads the crate drawing. The last line numbers the stacks;
// the lines above hold crate labels at columns 1, 5, 9, ...
func parseStacks(lines []string) ([][]byte, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: crate drawing too short", domain.ErrInvalidInput)
	}

	numbers := strings.Fields(lines[len(lines)-1])
	count := len(numbers)
	if count == 0 {
		return nil, fmt.Errorf("%w: no stack numbers found", domain.ErrInvalidInput)
	}

	stacks := make([][]byte, count)

	// Bottom-up so each stack is appended in order.
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for stack := 0; stack < count; stack++ {
			col := stack*4 + 1
			if col >= len(line) {
				break
			}
			if label := line[col]; label != ' ' {
				stacks[stack] = append(stacks[stack], label)
			}
		}
	}
	return stacks, nil
}

// parseMoves reads "move N from A to B" lines into 0-based moves.
func parseMoves(lines []string, stackCount int) ([]move, error) {
	moves := make([]move, 0, len(lines))
	for _, line := range lines {
		var m move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.count, &m.from, &m.to); err != nil {
			return nil, fmt.Errorf("%w: move %q", domain.ErrInvalidInput, line)
		}
		m.from--
		m.to--
		if m.from < 0 || m.from >= stackCount || m.to < 0 || m.to >= stackCount || m.count < 1 {
			return nil, fmt.Errorf("%w: move %q out of range", domain.ErrInvalidInput, line)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// moveOneByOne moves crates individually, reversing their order.
func moveOneByOne(stacks [][]byte, m move) {
	from := stacks[m.from]
	for i := 0; i < m.count; i++ {
		stacks[m.to] = append(stacks[m.to], from[len(from)-1-i])
	}
	stacks[m.from] = from[:len(from)-m.count]
}

// moveInBulk moves crates as one pile, preserving their order.
func moveInBulk(stacks [][]byte, m move) {
	from := stacks[m.from]
	stacks[m.to] = append(stacks[m.to], from[len(from)-m.count:]...)
	stacks[m.from] = from[:len(from)-m.count]
}

func cloneStacks(stacks [][]byte) [][]byte {
	clone := make([][]byte, len(stacks))
	for i, stack := range stacks {
		clone[i] = append([]byte(nil), stack...)
	}
	return clone
}

// topCrates returns the label on top of each stack, in stack order.
func topCrates(stacks [][]byte) string {
	var b strings.Builder
	for _, stack := range stacks {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}
	return b.String()
}
