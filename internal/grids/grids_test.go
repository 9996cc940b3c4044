package grids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{X: 2, Y: 3}

	assert.Equal(t, Point{X: 3, Y: 5}, p.Add(Point{X: 1, Y: 2}))
	assert.Equal(t, 7, p.Manhattan(Point{X: -2, Y: 0}))
	assert.Equal(t, [4]Point{
		{X: 1, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 4},
	}, p.Neighbours4())
}

func TestTranspose(t *testing.T) {
	m := [][]int{{1, 2, 3}, {4, 5, 6}}

	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, Transpose(m))
	assert.Nil(t, Transpose[int](nil))
}

func TestTransposeStrings(t *testing.T) {
	assert.Equal(t, []string{"ad", "be", "cf"}, TransposeStrings([]string{"abc", "def"}))
	assert.Nil(t, TransposeStrings(nil))
}

func TestRotate90(t *testing.T) {
	m := [][]int{{1, 2}, {3, 4}, {5, 6}}

	assert.Equal(t, [][]int{{5, 3, 1}, {6, 4, 2}}, Rotate90(m, true))
	assert.Equal(t, [][]int{{2, 4, 6}, {1, 3, 5}}, Rotate90(m, false))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\r\n"))
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n"))
	// Interior blank lines survive.
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb\n"))
}

func TestBlocks(t *testing.T) {
	got := Blocks("1\n2\n\n3\n\n4\n5\n")
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}, {"4", "5"}}, got)
	assert.Nil(t, Blocks(""))
	assert.Equal(t, [][]string{{"1"}}, Blocks("1"))
}
