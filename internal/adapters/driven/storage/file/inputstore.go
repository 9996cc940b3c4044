// Package file stores puzzle inputs as plain files, one per day, in the
// classic input_files/dayN.txt layout.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Ensure InputStore implements the interface.
var _ driven.InputStore = (*InputStore)(nil)

// InputStore reads and writes day inputs under a single directory.
type InputStore struct {
	dir string
}

// NewInputStore creates an input store rooted at dir. The directory is
// created on the first Put, not here, so a read-only run never touches
// the filesystem.
func NewInputStore(dir string) *InputStore {
	return &InputStore{dir: dir}
}

// Get returns the raw input for a day.
func (s *InputStore) Get(_ context.Context, day int) (string, error) {
	data, err := os.ReadFile(s.Path(day))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: day %d (expected %s)", domain.ErrNoInput, day, s.Path(day))
		}
		return "", fmt.Errorf("reading input for day %d: %w", day, err)
	}
	return string(data), nil
}

// Put stores the raw input for a day, replacing any existing file.
func (s *InputStore) Put(_ context.Context, day int, input string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating input directory: %w", err)
	}
	if err := os.WriteFile(s.Path(day), []byte(input), 0644); err != nil {
		return fmt.Errorf("writing input for day %d: %w", day, err)
	}
	return nil
}

// Has reports whether an input file exists for a day.
func (s *InputStore) Has(_ context.Context, day int) (bool, error) {
	_, err := os.Stat(s.Path(day))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking input for day %d: %w", day, err)
}

// Path returns the input file path for a day.
func (s *InputStore) Path(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day%d.txt", day))
}
