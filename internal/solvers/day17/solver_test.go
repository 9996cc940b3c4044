package day17

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

func TestSolveSample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample+"\n")
	require.NoError(t, err)

	assert.Equal(t, "3068", answers.Part1)
	assert.Equal(t, "1514285714288", answers.Part2)
}

func TestHeightAfterFirstRocks(t *testing.T) {
	jets, err := parseJets(sample)
	require.NoError(t, err)

	tw, err := simulate(context.Background(), jets)
	require.NoError(t, err)

	// Heights from dropping the first rocks by hand.
	assert.EqualValues(t, 0, tw.heightAfter(0))
	assert.EqualValues(t, 1, tw.heightAfter(1))
	assert.EqualValues(t, 4, tw.heightAfter(2))
	assert.EqualValues(t, 6, tw.heightAfter(3))
	assert.EqualValues(t, 7, tw.heightAfter(4))
	assert.EqualValues(t, 9, tw.heightAfter(5))
	assert.EqualValues(t, 17, tw.heightAfter(10))
}

func TestParseJetsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "  \n"},
		{"stray character", "><>^<>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJets(tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPushRespectsWalls(t *testing.T) {
	c := &chamber{rows: []byte{floorRow}, jets: []byte("<>")}

	// A rock against the left wall is not pushed further left.
	rock := []byte{0b1000000}
	assert.Equal(t, rock, c.push(rock))
	// The next jet pushes it right.
	assert.Equal(t, []byte{0b0100000}, c.push(rock))
}

func TestStateKeyDistinguishesJetOffset(t *testing.T) {
	c := &chamber{rows: []byte{floorRow, 0b0011110}, top: 1, jets: []byte(sample)}

	before := c.stateKey(0)
	c.jet = 7
	assert.NotEqual(t, before, c.stateKey(0))
}
