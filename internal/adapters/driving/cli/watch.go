package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <day>",
	Short: "Re-run a solver whenever its input changes",
	Long: `Solves the day once, then watches its input file and re-runs the
solver on every change. Useful while iterating on a puzzle input.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Watching day %d input (%s), Ctrl-C to stop\n\n", day, inputStore.Path(day))
	err = watchService.Watch(cmd.Context(), day, func(result domain.Result, err error) {
		if err != nil {
			cmd.Printf("error: %v\n", err)
			return
		}
		printResult(cmd, result)
		cmd.Println()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
