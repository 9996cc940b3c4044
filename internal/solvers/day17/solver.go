// Package day17 solves Pyroclastic Flow: tetris-like rocks falling in a
// narrow chamber, with cycle detection for the long part.
package day17

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Rock counts for the two parts.
const (
	rocksPart1 = 2022
	rocksPart2 = 1_000_000_000_000
)

// Each chamber row is a 7-bit mask. Bit 6 is the column against the
// left wall, bit 0 the right wall, so a push left is a shift left.
const (
	leftWall  = 1 << 6
	rightWall = 1
	floorRow  = 0b111_1111
)

// cycleDepth is how many rows below the tower top feed the cycle
// detection key. Rocks never sink deeper than this before resting.
const cycleDepth = 30

// rockShapes holds the five falling shapes, rows bottom to top, already
// positioned two columns from the left wall as they spawn.
var rockShapes = [][]byte{
	{0b0011110},                       // horizontal bar
	{0b0001000, 0b0011100, 0b0001000}, // plus
	{0b0011100, 0b0000100, 0b0000100}, // mirrored L
	{0b0010000, 0b0010000, 0b0010000, 0b0010000}, // vertical bar
	{0b0011000, 0b0011000},                       // square
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 17.
type Solver struct{}

// New creates the day 17 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 17 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Pyroclastic Flow" }

// Solve measures the tower after 2022 rocks and after a trillion. The
// jet pattern and rock order repeat, so once the same (rock, jet, top
// rows) state recurs the tower grows linearly and both answers follow
// from the recorded heights.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	jets, err := parseJets(input)
	if err != nil {
		return domain.Answers{}, err
	}

	tower, err := simulate(ctx, jets)
	if err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.FormatInt(tower.heightAfter(rocksPart1), 10),
		Part2: strconv.FormatInt(tower.heightAfter(rocksPart2), 10),
	}, nil
}

// tower records the height after every dropped rock up to the first
// repeated state, plus the cycle that repeats from there on.
type tower struct {
	heights     []int
	cycleStart  int
	cycleLen    int
	cycleHeight int
}

// heightAfter returns the tower height after the given number of rocks.
func (t *tower) heightAfter(rocks int64) int64 {
	if rocks < int64(len(t.heights)) {
		return int64(t.heights[rocks])
	}
	sinceStart := rocks - int64(t.cycleStart)
	cycles := sinceStart / int64(t.cycleLen)
	remainder := sinceStart % int64(t.cycleLen)
	return int64(t.heights[int64(t.cycleStart)+remainder]) + cycles*int64(t.cycleHeight)
}

// chamber is the grown rock pile. Row 0 is a solid floor sentinel.
type chamber struct {
	rows []byte
	top  int
	jets []byte
	jet  int
}

// simulate drops rocks until the chamber state repeats.
func simulate(ctx context.Context, jets []byte) (*tower, error) {
	c := &chamber{rows: []byte{floorRow}, jets: jets}
	t := &tower{heights: []int{0}}
	seen := map[string]int{}

	// Generous cap: real jet patterns repeat within a few thousand
	// drops, and the cap keeps a degenerate pattern from spinning.
	limit := 1_000_000

	for drop := 1; drop <= limit; drop++ {
		if drop%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		c.dropRock(rockShapes[(drop-1)%len(rockShapes)])
		t.heights = append(t.heights, c.top)

		key := c.stateKey((drop - 1) % len(rockShapes))
		if start, ok := seen[key]; ok {
			t.cycleStart = start
			t.cycleLen = drop - start
			t.cycleHeight = c.top - t.heights[start]
			return t, nil
		}
		seen[key] = drop
	}
	return nil, fmt.Errorf("%w: no repeating state after %d rocks", domain.ErrInvalidInput, limit)
}

// dropRock spawns the shape three rows above the pile and lets the jets
// and gravity take it down until it rests.
func (c *chamber) dropRock(shape []byte) {
	rock := append([]byte(nil), shape...)
	bottom := c.top + 4

	for {
		pushed := c.push(rock)
		if !c.collides(pushed, bottom) {
			rock = pushed
		}
		if c.collides(rock, bottom-1) {
			break
		}
		bottom--
	}

	for i, row := range rock {
		y := bottom + i
		for y >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[y] |= row
		if y > c.top {
			c.top = y
		}
	}
}

// push applies the next jet to a copy of the rock, stopping at the
// walls.
func (c *chamber) push(rock []byte) []byte {
	jet := c.jets[c.jet]
	c.jet = (c.jet + 1) % len(c.jets)

	pushed := make([]byte, len(rock))
	for i, row := range rock {
		if jet == '<' {
			if row&leftWall != 0 {
				return rock
			}
			pushed[i] = row << 1
		} else {
			if row&rightWall != 0 {
				return rock
			}
			pushed[i] = row >> 1
		}
	}
	return pushed
}

// collides reports whether the rock at the given bottom row overlaps
// settled rock or the floor.
func (c *chamber) collides(rock []byte, bottom int) bool {
	for i, row := range rock {
		y := bottom + i
		if y < len(c.rows) && c.rows[y]&row != 0 {
			return true
		}
	}
	return false
}

// stateKey fingerprints the falling state: next shape, jet offset and
// the pile's top rows.
func (c *chamber) stateKey(shape int) string {
	depth := cycleDepth
	if depth > c.top {
		depth = c.top
	}
	var b strings.Builder
	b.Grow(depth + 8)
	b.WriteByte(byte(shape))
	b.WriteByte(byte(c.jet))
	b.WriteByte(byte(c.jet >> 8))
	b.Write(c.rows[c.top-depth+1 : c.top+1])
	return b.String()
}

// parseJets validates the jet pattern line.
func parseJets(input string) ([]byte, error) {
	pattern := strings.TrimSpace(input)
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty jet pattern", domain.ErrInvalidInput)
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '<' && pattern[i] != '>' {
			return nil, fmt.Errorf("%w: jet %q at offset %d", domain.ErrInvalidInput, pattern[i], i)
		}
	}
	return []byte(pattern), nil
}
