// Package memory provides in-memory driven adapters. They back tests
// and the occasional ephemeral run; nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Ensure InputStore implements the interface.
var _ driven.InputStore = (*InputStore)(nil)

// InputStore keeps puzzle inputs in a map.
type InputStore struct {
	mu     sync.RWMutex
	inputs map[int]string
}

// NewInputStore creates an empty in-memory input store.
func NewInputStore() *InputStore {
	return &InputStore{inputs: make(map[int]string)}
}

// Get returns the stored input for a day.
func (s *InputStore) Get(_ context.Context, day int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	input, ok := s.inputs[day]
	if !ok {
		return "", fmt.Errorf("%w: day %d", domain.ErrNoInput, day)
	}
	return input, nil
}

// Put stores the input for a day.
func (s *InputStore) Put(_ context.Context, day int, input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[day] = input
	return nil
}

// Has reports whether an input exists for a day.
func (s *InputStore) Has(_ context.Context, day int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.inputs[day]
	return ok, nil
}

// Path returns a placeholder identifier; memory inputs have no file.
func (s *InputStore) Path(day int) string {
	return fmt.Sprintf("memory://inputs/day%d", day)
}
