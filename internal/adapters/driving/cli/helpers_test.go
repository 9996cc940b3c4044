package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	configfile "github.com/puzzlekit/aoc-cli/internal/adapters/driven/config/file"
	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/memory"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
	"github.com/puzzlekit/aoc-cli/internal/core/services"
)

// stubRunner returns canned results without touching any store.
type stubRunner struct {
	result *domain.Result
	err    error
	runs   []int
}

func (s *stubRunner) Run(_ context.Context, day int) (*domain.Result, error) {
	s.runs = append(s.runs, day)
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.Puzzle.Day = day
	return &r, nil
}

func (s *stubRunner) RunAll(ctx context.Context, onResult func(domain.Result)) ([]domain.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, _ := s.Run(ctx, s.result.Puzzle.Day)
	if onResult != nil {
		onResult(*r)
	}
	return []domain.Result{*r}, nil
}

func (s *stubRunner) Accept(_ context.Context, day int) error {
	if s.err != nil {
		return s.err
	}
	return nil
}

// stubFetch records fetch calls.
type stubFetch struct {
	path       string
	downloaded bool
	err        error
	calls      []int
}

func (s *stubFetch) Fetch(_ context.Context, day int, _ bool) (string, bool, error) {
	s.calls = append(s.calls, day)
	return s.path, s.downloaded, s.err
}

func (s *stubFetch) FetchAll(context.Context, bool) (int, []error) {
	if s.err != nil {
		return 0, []error{s.err}
	}
	return 3, nil
}

func sampleRun(day int) *domain.Result {
	return &domain.Result{
		ID:           "run-1",
		Puzzle:       domain.Puzzle{Year: 2022, Day: day, Title: "Calorie Counting"},
		Answers:      domain.Answers{Part1: "24000", Part2: "45000"},
		Duration:     1500 * time.Microsecond,
		RanAt:        time.Date(2022, 12, 1, 8, 0, 0, 0, time.UTC),
		Verification: domain.VerifyMatch,
	}
}

// withServices swaps in test doubles for the wired services and
// restores the previous wiring afterwards, so initServices is a no-op
// during the test.
func withServices(t *testing.T, runner driving.Runner, fetch driving.FetchService) {
	t.Helper()
	prevRunner, prevFetch := runnerService, fetchService
	prevRegistry, prevInputs, prevResults := registryService, inputStore, resultStore
	prevConfig := configStore

	if runner == nil {
		runner = &stubRunner{result: sampleRun(1)}
	}
	runnerService = runner
	fetchService = fetch
	registryService = services.NewSolverRegistry()
	inputStore = memory.NewInputStore()
	resultStore = memory.NewResultStore()

	cfg, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = cfg

	t.Cleanup(func() {
		runnerService, fetchService = prevRunner, prevFetch
		registryService, inputStore, resultStore = prevRegistry, prevInputs, prevResults
		configStore = prevConfig
	})
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags returns flag-bound package variables to their defaults
// between tests.
func resetFlags() {
	runAll, runAccept, runVerify, runJSON, runPlain = false, false, false, false, false
	fetchForce = false
	resultsJSON, resultsLimit = false, 10
	flagVerbose = false
}
