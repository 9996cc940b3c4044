// Package day02 solves Rock Paper Scissors: scoring a strategy guide
// under two interpretations of its second column.
package day02

import (
	"context"
	"fmt"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// scores maps a round ("<elf> <you>") to its score: the outcome
// (0 loss, 3 draw, 6 win) plus the shape you chose (1 rock, 2 paper,
// 3 scissors). A/X rock, B/Y paper, C/Z scissors.
var scores = map[string]int{
	"A X": 3 + 1, // rock draws rock
	"A Y": 6 + 2, // paper beats rock
	"A Z": 0 + 3, // scissors lose to rock
	"B X": 0 + 1, // rock loses to paper
	"B Y": 3 + 2, // paper draws paper
	"B Z": 6 + 3, // scissors beat paper
	"C X": 6 + 1, // rock beats scissors
	"C Y": 0 + 2, // paper loses to scissors
	"C Z": 3 + 3, // scissors draw scissors
}

// outcomes maps a round under the part 2 reading (X lose, Y draw,
// Z win) to the equivalent part 1 round, so the same score table applies.
var outcomes = map[string]string{
	"A X": "A Z", // must lose to rock: scissors
	"A Y": "A X", // must draw with rock: rock
	"A Z": "A Y", // must beat rock: paper
	"B X": "B X",
	"B Y": "B Y",
	"B Z": "B Z",
	"C X": "C Y", // must lose to scissors: paper
	"C Y": "C Z", // must draw with scissors: scissors
	"C Z": "C X", // must beat scissors: rock
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 2.
type Solver struct{}

// New creates the day 2 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 2 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Rock Paper Scissors" }

// Solve totals the strategy guide score under both readings.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	total1, total2 := 0, 0

	for _, line := range grids.Lines(input) {
		if len(line) < 3 {
			return domain.Answers{}, fmt.Errorf("%w: round %q", domain.ErrInvalidInput, line)
		}
		round := line[:3]

		score, ok := scores[round]
		if !ok {
			return domain.Answers{}, fmt.Errorf("%w: round %q", domain.ErrInvalidInput, round)
		}
		total1 += score
		total2 += scores[outcomes[round]]
	}

	return domain.Answers{
		Part1: strconv.Itoa(total1),
		Part2: strconv.Itoa(total2),
	}, nil
}
