// Package day14 solves Regolith Reservoir: sand falling through a cave
// of rock paths.
package day14

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// sandSource is the point sand pours from.
var sandSource = grids.Point{X: 500, Y: 0}

// cave tracks blocked squares and the depth of the lowest rock.
type cave struct {
	blocked map[grids.Point]bool
	maxY    int
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 14.
type Solver struct{}

// New creates the day 14 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 14 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Regolith Reservoir" }

// Solve counts resting sand units before the first grain falls past the
// lowest rock, then the units needed to block the source once a floor
// sits two squares below that rock.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	c, err := parseCave(input)
	if err != nil {
		return domain.Answers{}, err
	}

	intoAbyss, sourceBlocked := c.pour()

	return domain.Answers{
		Part1: strconv.Itoa(intoAbyss),
		Part2: strconv.Itoa(sourceBlocked),
	}, nil
}

// pour drops sand until the source itself is covered, returning the
// resting count at the moment a grain first passes the lowest rock and
// the final count. Each grain resumes from the previous grain's fall
// path instead of restarting at the source.
func (c *cave) pour() (intoAbyss, sourceBlocked int) {
	floor := c.maxY + 2
	path := []grids.Point{sandSource}
	intoAbyss = -1

	for len(path) > 0 {
		grain := path[len(path)-1]

		if intoAbyss < 0 && grain.Y > c.maxY {
			intoAbyss = sourceBlocked
		}

		if next, ok := c.fallFrom(grain, floor); ok {
			path = append(path, next)
			continue
		}

		c.blocked[grain] = true
		sourceBlocked++
		path = path[:len(path)-1]
	}
	if intoAbyss < 0 {
		// Fully enclosed cave: the source blocks before anything
		// can reach the lowest rock.
		intoAbyss = sourceBlocked
	}
	return intoAbyss, sourceBlocked
}

// fallFrom returns the square a grain at p moves to next, or false when
// it rests. The floor stops everything.
func (c *cave) fallFrom(p grids.Point, floor int) (grids.Point, bool) {
	if p.Y+1 >= floor {
		return grids.Point{}, false
	}
	for _, dx := range []int{0, -1, 1} {
		next := grids.Point{X: p.X + dx, Y: p.Y + 1}
		if !c.blocked[next] {
			return next, true
		}
	}
	return grids.Point{}, false
}

// parseCave reads rock paths such as "498,4 -> 498,6 -> 496,6".
func parseCave(input string) (*cave, error) {
	c := &cave{blocked: map[grids.Point]bool{}}

	for _, line := range grids.Lines(input) {
		var prev grids.Point
		for i, field := range strings.Split(line, " -> ") {
			point, err := parsePoint(field)
			if err != nil {
				return nil, fmt.Errorf("%w: path %q: %v", domain.ErrInvalidInput, line, err)
			}
			if point.Y > c.maxY {
				c.maxY = point.Y
			}
			if i > 0 {
				if err := c.addSegment(prev, point); err != nil {
					return nil, fmt.Errorf("%w: path %q: %v", domain.ErrInvalidInput, line, err)
				}
			}
			prev = point
		}
	}

	if len(c.blocked) == 0 {
		return nil, fmt.Errorf("%w: no rock paths", domain.ErrInvalidInput)
	}
	return c, nil
}

// addSegment fills the horizontal or vertical run between two corners.
func (c *cave) addSegment(from, to grids.Point) error {
	if from.X != to.X && from.Y != to.Y {
		return fmt.Errorf("diagonal segment %v -> %v", from, to)
	}
	step := grids.Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	for p := from; ; p = p.Add(step) {
		c.blocked[p] = true
		if p == to {
			return nil
		}
	}
}

func parsePoint(field string) (grids.Point, error) {
	xs, ys, ok := strings.Cut(field, ",")
	if !ok {
		return grids.Point{}, fmt.Errorf("corner %q", field)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grids.Point{}, fmt.Errorf("corner %q", field)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grids.Point{}, fmt.Errorf("corner %q", field)
	}
	return grids.Point{X: x, Y: y}, nil
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
