package day07

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestSolver_Solve_Sample(t *testing.T) {
	answers, err := New().Solve(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, "95437", answers.Part1)
	assert.Equal(t, "24933642", answers.Part2)
}

func TestSolver_Solve_CdAboveRoot(t *testing.T) {
	_, err := New().Solve(context.Background(), "$ cd /\n$ cd ..\n")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDirectorySizes(t *testing.T) {
	sizes, err := directorySizes([]string{
		"$ cd /",
		"$ ls",
		"100 a.txt",
		"dir sub",
		"$ cd sub",
		"$ ls",
		"50 b.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, 150, sizes["/"])
	assert.Equal(t, 50, sizes["/sub/"])
}
