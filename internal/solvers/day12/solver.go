// Package day12 solves Hill Climbing Algorithm: shortest paths over an
// elevation grid via breadth-first search.
package day12

import (
	"context"
	"fmt"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// heightmap is an elevation grid with marked start and end squares.
type heightmap struct {
	heights [][]byte
	start   grids.Point
	end     grids.Point
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 12.
type Solver struct{}

// New creates the day 12 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 12 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Hill Climbing Algorithm" }

// Solve finds the shortest path from S to E climbing at most one level
// per step, then the shortest path from any lowest square to E. The
// second part searches backwards from E so a single sweep covers every
// candidate start.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	hm, err := parseHeightmap(input)
	if err != nil {
		return domain.Answers{}, err
	}

	fromStart, err := hm.shortestPath(hm.start, func(p grids.Point) bool {
		return p == hm.end
	}, climbing)
	if err != nil {
		return domain.Answers{}, err
	}

	fromLowest, err := hm.shortestPath(hm.end, func(p grids.Point) bool {
		return hm.heightAt(p) == 'a'
	}, descending)
	if err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.Itoa(fromStart),
		Part2: strconv.Itoa(fromLowest),
	}, nil
}

// climbing permits steps rising at most one level.
func climbing(from, to byte) bool { return to <= from+1 }

// descending is climbing reversed, for searches that walk from E.
func descending(from, to byte) bool { return climbing(to, from) }

// shortestPath runs a breadth-first search from origin and returns the
// number of steps to the first square satisfying goal.
func (h *heightmap) shortestPath(origin grids.Point, goal func(grids.Point) bool, allowed func(from, to byte) bool) (int, error) {
	type state struct {
		pos   grids.Point
		steps int
	}

	visited := map[grids.Point]bool{origin: true}
	queue := []state{{pos: origin}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if goal(current.pos) {
			return current.steps, nil
		}
		for _, next := range current.pos.Neighbours4() {
			if !h.inBounds(next) || visited[next] {
				continue
			}
			if !allowed(h.heightAt(current.pos), h.heightAt(next)) {
				continue
			}
			visited[next] = true
			queue = append(queue, state{pos: next, steps: current.steps + 1})
		}
	}
	return 0, fmt.Errorf("%w: no path found", domain.ErrInvalidInput)
}

func (h *heightmap) inBounds(p grids.Point) bool {
	return p.Y >= 0 && p.Y < len(h.heights) && p.X >= 0 && p.X < len(h.heights[p.Y])
}

func (h *heightmap) heightAt(p grids.Point) byte {
	return h.heights[p.Y][p.X]
}

// parseHeightmap reads the grid, replacing the S and E markers with
// their elevations ('a' and 'z') and recording their positions.
func parseHeightmap(input string) (*heightmap, error) {
	lines := grids.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty heightmap", domain.ErrInvalidInput)
	}

	hm := &heightmap{start: grids.Point{X: -1, Y: -1}, end: grids.Point{X: -1, Y: -1}}
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: ragged heightmap row %d", domain.ErrInvalidInput, y)
		}
		row := []byte(line)
		for x, c := range row {
			switch {
			case c == 'S':
				hm.start = grids.Point{X: x, Y: y}
				row[x] = 'a'
			case c == 'E':
				hm.end = grids.Point{X: x, Y: y}
				row[x] = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("%w: unexpected square %q", domain.ErrInvalidInput, c)
			}
		}
		hm.heights = append(hm.heights, row)
	}

	if hm.start.X < 0 || hm.end.X < 0 {
		return nil, fmt.Errorf("%w: heightmap missing S or E", domain.ErrInvalidInput)
	}
	return hm, nil
}
