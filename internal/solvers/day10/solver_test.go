package day10

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

const sampleScreen = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func TestSolver_Solve_Sample(t *testing.T) {
	program, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	answers, err := New().Solve(context.Background(), string(program))

	require.NoError(t, err)
	assert.Equal(t, "13140", answers.Part1)
	assert.Equal(t, sampleScreen, answers.Part2)
}

func TestSolver_Solve_UnknownInstruction(t *testing.T) {
	_, err := New().Solve(context.Background(), "noop\nmulx 3\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSolver_Capabilities_Visual(t *testing.T) {
	caps := driven.CapabilitiesOf(New())

	assert.True(t, caps.Visual)
}

func TestSignalSampler_SamplesEveryFortyCycles(t *testing.T) {
	sampler := &signalSampler{nextCycle: 20}

	for cycle := 1; cycle <= 100; cycle++ {
		sampler.tick(cycle, 2)
	}

	// 20*2 + 60*2 + 100*2
	assert.Equal(t, 360, sampler.total)
}

func TestCRT_RenderShape(t *testing.T) {
	crt := newCRT()
	rendered := crt.render()

	rows := strings.Split(rendered, "\n")
	require.Len(t, rows, crtHeight)
	for _, row := range rows {
		assert.Len(t, row, crtWidth)
	}
}
