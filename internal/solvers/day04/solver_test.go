package day04

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestSolver_Solve_Sample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, "2", answers.Part1)
	assert.Equal(t, "4", answers.Part2)
}

func TestSolver_Solve_Malformed(t *testing.T) {
	_, err := New().Solve(context.Background(), "2-4;6-8\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
