package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	// The directory appears on first Put, even when nested.
	dir := filepath.Join(t.TempDir(), "input_files")
	store := NewInputStore(dir)

	has, err := store.Has(ctx, 7)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = store.Get(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNoInput)

	require.NoError(t, store.Put(ctx, 7, "$ cd /\n"))

	has, err = store.Has(ctx, 7)
	require.NoError(t, err)
	assert.True(t, has)

	input, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "$ cd /\n", input)

	// Put replaces.
	require.NoError(t, store.Put(ctx, 7, "$ ls\n"))
	input, err = store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "$ ls\n", input)
}

func TestPath(t *testing.T) {
	store := NewInputStore("input_files")
	assert.Equal(t, filepath.Join("input_files", "day13.txt"), store.Path(13))
}

func TestGetReadsExistingLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day3.txt"), []byte("vJrwpWtwJgWrhcsFMMfFFhFp\n"), 0644))

	store := NewInputStore(dir)
	input, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "vJrwpWtwJgWrhcsFMMfFFhFp\n", input)
}
