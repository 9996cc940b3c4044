package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore keeps run results and accepted answers in memory.
type ResultStore struct {
	mu       sync.RWMutex
	results  []domain.Result
	accepted map[int]domain.Answers
}

// NewResultStore creates an empty in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{accepted: make(map[int]domain.Answers)}
}

// SaveResult records a run.
func (s *ResultStore) SaveResult(_ context.Context, result *domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
	return nil
}

// ResultsByDay returns all recorded runs for a day, newest first.
func (s *ResultStore) ResultsByDay(_ context.Context, day int) ([]domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var runs []domain.Result
	for _, r := range s.results {
		if r.Puzzle.Day == day {
			runs = append(runs, r)
		}
	}
	sortNewestFirst(runs)
	return runs, nil
}

// Results returns all recorded runs, newest first.
func (s *ResultStore) Results(_ context.Context) ([]domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := append([]domain.Result(nil), s.results...)
	sortNewestFirst(runs)
	return runs, nil
}

// Accepted returns the accepted answers for a day.
func (s *ResultStore) Accepted(_ context.Context, day int) (domain.Answers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	answers, ok := s.accepted[day]
	if !ok {
		return domain.Answers{}, fmt.Errorf("%w: no accepted answers for day %d", domain.ErrNotFound, day)
	}
	return answers, nil
}

// Accept records answers as the accepted ones for a day.
func (s *ResultStore) Accept(_ context.Context, day int, answers domain.Answers) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accepted[day] = answers
	return nil
}

func sortNewestFirst(runs []domain.Result) {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].RanAt.After(runs[j].RanAt)
	})
}
