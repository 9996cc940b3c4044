// Package day07 solves No Space Left On Device: reconstructing directory
// sizes from a shell session transcript.
package day07

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

const (
	smallDirLimit = 100_000

	// diskSize - updateSize: usage above this forces a deletion.
	usableSpace = 40_000_000
)

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 7.
type Solver struct{}

// New creates the day 7 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 7 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "No Space Left On Device" }

// Solve accumulates each file's size into every directory on its path,
// so no tree structure is needed. Part 1 sums directories of at most
// 100k; part 2 finds the smallest directory freeing enough space.
func (s *Solver) Solve(_ context.Context, input string) (domain.Answers, error) {
	sizes, err := directorySizes(grids.Lines(input))
	if err != nil {
		return domain.Answers{}, err
	}

	root, ok := sizes["/"]
	if !ok {
		return domain.Answers{}, fmt.Errorf("%w: transcript never visits /", domain.ErrInvalidInput)
	}

	sum := 0
	freeNeeded := root - usableSpace
	smallest := root
	for _, size := range sizes {
		if size <= smallDirLimit {
			sum += size
		}
		if size >= freeNeeded && size < smallest {
			smallest = size
		}
	}

	return domain.Answers{
		Part1: strconv.Itoa(sum),
		Part2: strconv.Itoa(smallest),
	}, nil
}

// directorySizes replays the transcript, mapping each directory path to
// its total size (files in it and in all subdirectories).
func directorySizes(lines []string) (map[string]int, error) {
	sizes := make(map[string]int)
	var path []string

	for _, line := range lines {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 3 && fields[0] == "$" && fields[1] == "cd":
			switch fields[2] {
			case "/":
				path = []string{"/"}
			case "..":
				if len(path) <= 1 {
					return nil, fmt.Errorf("%w: cd .. above root", domain.ErrInvalidInput)
				}
				path = path[:len(path)-1]
			default:
				path = append(path, fields[2]+"/")
			}

		case len(fields) == 2 && fields[0] == "$" && fields[1] == "ls":
			// Listing follows; nothing to do for the command itself.

		case len(fields) == 2 && fields[0] == "dir":
			// Directories contribute nothing until files appear in them.

		case len(fields) == 2:
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: listing line %q", domain.ErrInvalidInput, line)
			}
			// Accumulate into every ancestor path.
			prefix := ""
			for _, part := range path {
				prefix += part
				sizes[prefix] += size
			}

		default:
			return nil, fmt.Errorf("%w: transcript line %q", domain.ErrInvalidInput, line)
		}
	}
	return sizes, nil
}
