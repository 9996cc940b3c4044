package cli

import (
	"github.com/spf13/cobra"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled puzzle solvers",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	cmd.Printf("Advent of Code %d\n\n", domain.Year)
	for _, puzzle := range registryService.List() {
		marker := " "
		if has, err := inputStore.Has(ctx, puzzle.Day); err == nil && has {
			marker = "*"
		}
		cmd.Printf("  %s day %2d  %s\n", marker, puzzle.Day, puzzle.Title)
	}
	cmd.Println("\n  * input available")
	return nil
}
