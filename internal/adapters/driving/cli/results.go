package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

var (
	resultsJSON  bool
	resultsLimit int
)

var resultsCmd = &cobra.Command{
	Use:   "results [day]",
	Short: "Show recorded solver runs",
	Long: `Shows previously recorded runs, newest first, with their answers,
timings and verification status. With a day argument only that day's
runs are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "output results as JSON")
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "n", 10, "maximum number of runs to show")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	var runs []domain.Result
	var err error
	if len(args) > 0 {
		day, parseErr := parseDay(args[0])
		if parseErr != nil {
			return parseErr
		}
		runs, err = resultStore.ResultsByDay(ctx, day)
	} else {
		runs, err = resultStore.Results(ctx)
	}
	if err != nil {
		return err
	}

	if resultsLimit > 0 && len(runs) > resultsLimit {
		runs = runs[:resultsLimit]
	}

	if resultsJSON {
		return outputResultsJSON(cmd, runs)
	}
	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for _, r := range runs {
		cmd.Printf("%s  day %2d  %.1fms  %-8s  part1=%s part2=%s\n",
			r.RanAt.Local().Format(time.DateTime), r.Puzzle.Day, r.Millis(),
			r.Verification, r.Answers.Part1, firstLine(r.Answers.Part2))
	}
	return nil
}

// firstLine flattens multi-line answers for the one-run-per-line view.
func firstLine(answer string) string {
	for i := 0; i < len(answer); i++ {
		if answer[i] == '\n' {
			return answer[:i] + "..."
		}
	}
	return answer
}
