package day08

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = `30373
25512
65332
33549
35390
`

func TestSolver_Solve_Sample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, "21", answers.Part1)
	assert.Equal(t, "8", answers.Part2)
}

func TestSolver_Solve_RaggedGrid(t *testing.T) {
	_, err := New().Solve(context.Background(), "123\n12\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSolver_Solve_NonDigit(t *testing.T) {
	_, err := New().Solve(context.Background(), "12a\n456\n789\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
