// Package day15 solves Beacon Exclusion Zone: sensor coverage measured
// by Manhattan distance.
package day15

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
	"github.com/puzzlekit/aoc-cli/internal/sets"
)

// tuningMultiplier scales the distress beacon's x coordinate.
const tuningMultiplier = 4_000_000

// sensor covers every point within radius of its position.
type sensor struct {
	pos    grids.Point
	beacon grids.Point
	radius int
}

// span is an inclusive x interval.
type span struct {
	lo, hi int
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 15. The row examined in part one and the search
// bound of part two differ between the sample and the real puzzle, so
// both are parameters.
type Solver struct {
	targetRow   int
	searchBound int
}

// New creates the day 15 solver.
func New(targetRow, searchBound int) *Solver {
	return &Solver{targetRow: targetRow, searchBound: searchBound}
}

// Day returns the day number.
func (s *Solver) Day() int { return 15 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Beacon Exclusion Zone" }

// Capabilities marks the solver as slow: part two sweeps millions of
// rows on real input.
func (s *Solver) Capabilities() driven.SolverCapabilities {
	return driven.SolverCapabilities{Slow: true}
}

// Solve counts the positions on the target row that cannot hold a
// beacon, then locates the one uncovered point inside the search square
// and reports its tuning frequency.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return domain.Answers{}, err
	}

	excluded := excludedOnRow(sensors, s.targetRow)

	frequency, err := tuningFrequency(ctx, sensors, s.searchBound)
	if err != nil {
		return domain.Answers{}, err
	}

	return domain.Answers{
		Part1: strconv.Itoa(excluded),
		Part2: strconv.FormatInt(frequency, 10),
	}, nil
}

// excludedOnRow counts covered positions on the row, minus any beacons
// already sitting there.
func excludedOnRow(sensors []sensor, row int) int {
	covered := 0
	for _, sp := range mergedSpans(sensors, row, nil) {
		covered += sp.hi - sp.lo + 1
	}

	beaconsOnRow := sets.New[int]()
	for _, sn := range sensors {
		if sn.beacon.Y == row {
			beaconsOnRow.Add(sn.beacon.X)
		}
	}
	return covered - beaconsOnRow.Len()
}

// tuningFrequency scans each row of the search square for the single
// gap in sensor coverage.
func tuningFrequency(ctx context.Context, sensors []sensor, bound int) (int64, error) {
	var spans []span
	for y := 0; y <= bound; y++ {
		if y%100_000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		spans = mergedSpans(sensors, y, spans[:0])
		x := 0
		for _, sp := range spans {
			if sp.lo > x {
				break
			}
			if sp.hi >= x {
				x = sp.hi + 1
			}
		}
		if x <= bound {
			return int64(x)*tuningMultiplier + int64(y), nil
		}
	}
	return 0, fmt.Errorf("%w: no uncovered position within bound %d", domain.ErrInvalidInput, bound)
}

// mergedSpans projects every sensor's coverage onto the row and merges
// the resulting intervals in ascending order. The scratch slice is
// reused across rows.
func mergedSpans(sensors []sensor, row int, scratch []span) []span {
	spans := scratch
	for _, sn := range sensors {
		reach := sn.radius - abs(sn.pos.Y-row)
		if reach < 0 {
			continue
		}
		spans = append(spans, span{lo: sn.pos.X - reach, hi: sn.pos.X + reach})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	merged := spans[:0]
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			if sp.hi > merged[n-1].hi {
				merged[n-1].hi = sp.hi
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// parseSensors reads lines such as
// "Sensor at x=2, y=18: closest beacon is at x=-2, y=15".
func parseSensors(input string) ([]sensor, error) {
	var sensors []sensor
	for _, line := range grids.Lines(input) {
		var sn sensor
		_, err := fmt.Sscanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&sn.pos.X, &sn.pos.Y, &sn.beacon.X, &sn.beacon.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: sensor line %q", domain.ErrInvalidInput, line)
		}
		sn.radius = sn.pos.Manhattan(sn.beacon)
		sensors = append(sensors, sn)
	}
	if len(sensors) == 0 {
		return nil, fmt.Errorf("%w: no sensors", domain.ErrInvalidInput)
	}
	return sensors, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
