// Package grids provides generic matrix helpers and a hashable point
// type shared by the grid-based solvers.
package grids

import "strings"

// Point is a simple coordinate that can be used as a map key.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Manhattan returns the Manhattan distance to other.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Neighbours4 returns the four orthogonal neighbours.
func (p Point) Neighbours4() [4]Point {
	return [4]Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Transpose returns a new matrix that is the transpose of m.
// The matrix needn't be square; rows must have equal length.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}
	result := make([][]T, len(m[0]))
	for i := range result {
		result[i] = make([]T, len(m))
		for j := range m {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// TransposeStrings transposes a list of equal-length strings, e.g.
// ["abc", "def"] becomes ["ad", "be", "cf"].
func TransposeStrings(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	result := make([]string, len(lines[0]))
	var b strings.Builder
	for col := 0; col < len(lines[0]); col++ {
		b.Reset()
		for _, line := range lines {
			b.WriteByte(line[col])
		}
		result[col] = b.String()
	}
	return result
}

// Rotate90 returns m rotated 90 degrees. Clockwise by default
// semantics match transposing the reversed rows.
func Rotate90[T any](m [][]T, clockwise bool) [][]T {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	result := make([][]T, cols)
	for i := range result {
		result[i] = make([]T, rows)
		for j := 0; j < rows; j++ {
			if clockwise {
				result[i][j] = m[rows-1-j][i]
			} else {
				result[i][j] = m[j][cols-1-i]
			}
		}
	}
	return result
}

// Lines splits raw input into lines, dropping a single trailing newline.
// Carriage returns are stripped so Windows inputs parse identically.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits raw input into blank-line separated blocks of lines.
func Blocks(input string) [][]string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	var blocks [][]string
	for _, chunk := range strings.Split(input, "\n\n") {
		blocks = append(blocks, strings.Split(chunk, "\n"))
	}
	return blocks
}
