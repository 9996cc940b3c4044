package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/puzzlekit/aoc-cli/internal/adapters/driving/tui"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

var (
	runAll    bool
	runAccept bool
	runVerify bool
	runJSON   bool
	runPlain  bool
)

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Run puzzle solvers",
	Long: `Runs the solver for a day against its stored input, times it and
records the result. Answers are checked against previously accepted
answers when those exist.

Without a day (or with --all) every day with an input is solved in
order, skipping days whose input is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every day with a stored input")
	runCmd.Flags().BoolVar(&runAccept, "accept", false, "record the answers as accepted for the day")
	runCmd.Flags().BoolVar(&runVerify, "verify", false, "exit non-zero when answers disagree with accepted ones")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output results as JSON")
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "plain output even on a terminal")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if len(args) == 0 || runAll {
		if len(args) > 0 {
			return errors.New("--all cannot be combined with a day argument")
		}
		return runAllDays(cmd)
	}

	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	result, err := runnerService.Run(cmd.Context(), day)
	if err != nil {
		return err
	}

	if runAccept {
		if err := runnerService.Accept(cmd.Context(), day); err != nil {
			return err
		}
	}

	if runJSON {
		if err := outputResultsJSON(cmd, []domain.Result{*result}); err != nil {
			return err
		}
	} else {
		printResult(cmd, *result)
	}
	return checkVerify([]domain.Result{*result})
}

// checkVerify turns a mismatch into a command error when --verify is set.
func checkVerify(results []domain.Result) error {
	if !runVerify {
		return nil
	}
	for _, r := range results {
		if r.Verification == domain.VerifyMismatch {
			return fmt.Errorf("day %d: %w", r.Puzzle.Day, domain.ErrAnswerMismatch)
		}
	}
	return nil
}

func runAllDays(cmd *cobra.Command) error {
	if runAccept {
		return errors.New("--accept needs a single day")
	}

	interactive := !runJSON && !runPlain && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		return runAllTUI(cmd)
	}

	start := time.Now()
	var results []domain.Result
	var err error
	if runJSON {
		results, err = runnerService.RunAll(cmd.Context(), nil)
	} else {
		results, err = runnerService.RunAll(cmd.Context(), func(r domain.Result) {
			printResult(cmd, r)
		})
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no inputs found: %w", domain.ErrNoInput)
	}

	if runJSON {
		if err := outputResultsJSON(cmd, results); err != nil {
			return err
		}
	} else {
		cmd.Printf("\nSolved %d days in %.1fms\n", len(results), float64(time.Since(start).Nanoseconds())/1e6)
	}
	return checkVerify(results)
}

func runAllTUI(cmd *cobra.Command) error {
	model := tui.NewRunAll(cmd.Context(), runnerService, registryService)
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return final.(*tui.RunAllModel).Err()
}

func printResult(cmd *cobra.Command, r domain.Result) {
	cmd.Printf("Day %d: %s\n", r.Puzzle.Day, r.Puzzle.Title)
	printPart(cmd, 1, r.Answers.Part1)
	printPart(cmd, 2, r.Answers.Part2)
	cmd.Printf("  Time: %.1fms%s\n", r.Millis(), verificationSuffix(r.Verification))
}

// printPart indents multi-line answers (the day 10 CRT render) under
// the part header.
func printPart(cmd *cobra.Command, part int, answer string) {
	if !strings.Contains(answer, "\n") {
		cmd.Printf("  Part %d: %s\n", part, answer)
		return
	}
	cmd.Printf("  Part %d:\n", part)
	for _, line := range strings.Split(strings.TrimRight(answer, "\n"), "\n") {
		cmd.Printf("    %s\n", line)
	}
}

func verificationSuffix(v domain.Verification) string {
	switch v {
	case domain.VerifyMatch:
		return "  [verified]"
	case domain.VerifyMismatch:
		return "  [MISMATCH with accepted answers]"
	default:
		return ""
	}
}

// resultJSON is the stable JSON shape for run output.
type resultJSON struct {
	Day          int     `json:"day"`
	Title        string  `json:"title"`
	Part1        string  `json:"part1"`
	Part2        string  `json:"part2"`
	Millis       float64 `json:"millis"`
	RanAt        string  `json:"ran_at"`
	Verification string  `json:"verification"`
}

func outputResultsJSON(cmd *cobra.Command, results []domain.Result) error {
	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, resultJSON{
			Day:          r.Puzzle.Day,
			Title:        r.Puzzle.Title,
			Part1:        r.Answers.Part1,
			Part2:        r.Answers.Part2,
			Millis:       r.Millis(),
			RanAt:        r.RanAt.Format(time.RFC3339),
			Verification: string(r.Verification),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// parseDay validates a day argument.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || !domain.ValidDay(day) {
		return 0, fmt.Errorf("%w: %q (expected 1-25)", domain.ErrInvalidDay, arg)
	}
	return day, nil
}
