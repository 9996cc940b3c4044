package day05

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestSolver_Solve_Sample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, "CMZ", answers.Part1)
	assert.Equal(t, "MCD", answers.Part2)
}

func TestSolver_Solve_MissingBlankLine(t *testing.T) {
	_, err := New().Solve(context.Background(), "[A]\n 1 \nmove 1 from 1 to 1\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSolver_Solve_MoveOutOfRange(t *testing.T) {
	input := "[A] [B]\n 1   2 \n\nmove 1 from 3 to 1\n"
	_, err := New().Solve(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseStacks(t *testing.T) {
	stacks, err := parseStacks([]string{"    [D]    ", "[N] [C]    ", "[Z] [M] [P]", " 1   2   3 "})

	require.NoError(t, err)
	require.Len(t, stacks, 3)
	assert.Equal(t, "ZN", string(stacks[0]))
	assert.Equal(t, "MCD", string(stacks[1]))
	assert.Equal(t, "P", string(stacks[2]))
}
