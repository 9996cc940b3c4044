// Package day06 solves Tuning Trouble: locating start-of-packet and
// start-of-message markers in a datastream.
package day06

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Marker sizes for the two parts.
const (
	packetMarkerSize  = 4
	messageMarkerSize = 14
)

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 6.
type Solver struct{}

// New creates the day 6 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 6 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Tuning Trouble" }

// Solve finds the first windows of 4 and 14 distinct characters.
// The packet marker cannot end after the message marker, so the second
// scan resumes where the first window began.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	stream := strings.TrimSpace(input)

	packet := findDistinctRun(stream, 0, packetMarkerSize)
	if packet < 0 {
		return domain.Answers{}, fmt.Errorf("%w: no start-of-packet marker", domain.ErrInvalidInput)
	}

	message := findDistinctRun(stream, packet-packetMarkerSize, messageMarkerSize)
	if message < 0 {
		return domain.Answers{}, fmt.Errorf("%w: no start-of-message marker", domain.ErrInvalidInput)
	}

	return domain.Answers{
		Part1: strconv.Itoa(packet),
		Part2: strconv.Itoa(message),
	}, nil
}

// findDistinctRun returns the number of characters processed when the
// first run of size distinct characters at or after start completes.
// Returns -1 if no such run exists.
func findDistinctRun(stream string, start, size int) int {
	// Sliding window over byte counts; the stream is plain ASCII.
	var counts [256]int
	distinct := 0

	for i := start; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++

		if i-start >= size {
			out := stream[i-size]
			counts[out]--
			if counts[out] == 0 {
				distinct--
			}
		}

		if distinct == size && i-start >= size-1 {
			return i + 1
		}
	}
	return -1
}
