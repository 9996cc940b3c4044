// Package day10 solves Cathode-Ray Tube: a cycle-accurate CPU with a
// single register driving signal-strength sampling and a CRT.
package day10

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// CRT geometry.
const (
	crtWidth  = 40
	crtHeight = 6

	litPixel  = '#'
	darkPixel = '.'
)

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 10.
type Solver struct{}

// New creates the day 10 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 10 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Cathode-Ray Tube" }

// Capabilities marks part 2 as multi-line output (letters on the CRT).
func (s *Solver) Capabilities() driven.SolverCapabilities {
	return driven.SolverCapabilities{Visual: true}
}

// Solve executes the program cycle by cycle. Listeners hook every tick:
// the signal sampler totals strength at cycles 20, 60, 100, ...; the
// CRT draws a pixel depending on the sprite position in X.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	sampler := &signalSampler{nextCycle: 20}
	crt := newCRT()

	cpu := cpu{listeners: []clockListener{sampler, crt}}
	if err := cpu.run(grids.Lines(input)); err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.Itoa(sampler.total),
		Part2: crt.render(),
	}, nil
}

// clockListener observes every CPU cycle with the register value
// during that cycle.
type clockListener interface {
	tick(cycle, x int)
}

// cpu executes noop/addx programs, ticking listeners once per cycle.
type cpu struct {
	listeners []clockListener
	cycle     int
	x         int
}

func (c *cpu) run(program []string) error {
	c.x = 1 // register X starts at 1

	for _, line := range program {
		switch {
		case line == "noop":
			c.tick(1)
		case strings.HasPrefix(line, "addx "):
			delta, err := strconv.Atoi(line[len("addx "):])
			if err != nil {
				return fmt.Errorf("%w: instruction %q", domain.ErrInvalidInput, line)
			}
			// addx takes two cycles; X changes after the second.
			c.tick(2)
			c.x += delta
		default:
			return fmt.Errorf("%w: instruction %q", domain.ErrInvalidInput, line)
		}
	}
	return nil
}

func (c *cpu) tick(cycles int) {
	for i := 0; i < cycles; i++ {
		c.cycle++
		for _, l := range c.listeners {
			l.tick(c.cycle, c.x)
		}
	}
}

// signalSampler totals cycle*X at cycles 20, 60, 100, 140, ...
type signalSampler struct {
	total     int
	nextCycle int
}

func (s *signalSampler) tick(cycle, x int) {
	if cycle == s.nextCycle {
		s.total += cycle * x
		s.nextCycle += crtWidth
	}
}

// crtScreen draws one pixel per cycle; the pixel is lit when the
// three-wide sprite centred on X overlaps the beam position.
type crtScreen struct {
	pixels [crtHeight][crtWidth]byte
}

func newCRT() *crtScreen {
	c := &crtScreen{}
	for y := range c.pixels {
		for x := range c.pixels[y] {
			c.pixels[y][x] = darkPixel
		}
	}
	return c
}

func (c *crtScreen) tick(cycle, x int) {
	pos := cycle - 1
	row, col := pos/crtWidth, pos%crtWidth
	if row >= crtHeight {
		return
	}
	if col >= x-1 && col <= x+1 {
		c.pixels[row][col] = litPixel
	}
}

// render returns the screen as six newline-separated rows.
func (c *crtScreen) render() string {
	rows := make([]string, crtHeight)
	for y := range c.pixels {
		rows[y] = string(c.pixels[y][:])
	}
	return strings.Join(rows, "\n")
}
