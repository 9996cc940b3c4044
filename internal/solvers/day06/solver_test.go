package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func TestSolver_Solve_Samples(t *testing.T) {
	for _, tc := range []struct {
		stream string
		part1  string
		part2  string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7", "19"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5", "23"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6", "23"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10", "29"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11", "26"},
	} {
		answers, err := New().Solve(context.Background(), tc.stream)

		require.NoError(t, err, tc.stream)
		assert.Equal(t, tc.part1, answers.Part1, tc.stream)
		assert.Equal(t, tc.part2, answers.Part2, tc.stream)
	}
}

func TestSolver_Solve_NoMarker(t *testing.T) {
	_, err := New().Solve(context.Background(), "aaaaaaaa")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
