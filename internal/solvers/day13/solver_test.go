package day13

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func TestSolveSample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample)
	require.NoError(t, err)

	assert.Equal(t, "13", answers.Part1)
	assert.Equal(t, "140", answers.Part2)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		right   string
		ordered bool
	}{
		{"numbers", "[1,1,3,1,1]", "[1,1,5,1,1]", true},
		{"mixed list and number", "[[1],[2,3,4]]", "[[1],4]", true},
		{"number promoted to list", "[9]", "[[8,7,6]]", false},
		{"left runs out first", "[[4,4],4,4]", "[[4,4],4,4,4]", true},
		{"right runs out first", "[7,7,7,7]", "[7,7,7]", false},
		{"empty left", "[]", "[3]", true},
		{"nested empties", "[[[]]]", "[[]]", false},
		{"deep nesting", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, err := parsePacket(tt.left)
			require.NoError(t, err)
			right, err := parsePacket(tt.right)
			require.NoError(t, err)

			assert.Equal(t, tt.ordered, compare(left, right) < 0)
		})
	}
}

func TestParsePacketInvalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unterminated list", "[1,2"},
		{"trailing data", "[1]2"},
		{"missing comma", "[1 2]"},
		{"empty", ""},
		{"bare letter", "[a]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePacket(tt.line)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParsePairsInvalid(t *testing.T) {
	_, err := parsePairs("[1]\n[2]\n[3]\n")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
