package day02

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func TestSolver_Solve_Sample(t *testing.T) {
	answers, err := New().Solve(context.Background(), "A Y\nB X\nC Z\n")

	require.NoError(t, err)
	assert.Equal(t, "15", answers.Part1)
	assert.Equal(t, "12", answers.Part2)
}

func TestSolver_Solve_UnknownRound(t *testing.T) {
	_, err := New().Solve(context.Background(), "D Q\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSolver_Solve_ShortLine(t *testing.T) {
	_, err := New().Solve(context.Background(), "A\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
