package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [day]",
	Short: "Download puzzle inputs",
	Long: `Downloads the input for a day from adventofcode.com into the input
directory, using the session cookie from the configuration:

  aoc config set session <value of your adventofcode.com session cookie>

Without a day, inputs for every solved day are fetched. Cached inputs
are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "re-download even if the input is cached")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fetchAllDays(cmd)
	}

	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	path, downloaded, err := fetchService.Fetch(cmd.Context(), day, fetchForce)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return errors.New("no session configured; run 'aoc config set session <cookie>' first")
		}
		return err
	}

	if downloaded {
		cmd.Printf("Fetched input for day %d to %s\n", day, path)
	} else {
		cmd.Printf("Input for day %d already cached at %s\n", day, path)
	}
	return nil
}

func fetchAllDays(cmd *cobra.Command) error {
	fetched, errs := fetchService.FetchAll(cmd.Context(), fetchForce)
	cmd.Printf("Fetched %d inputs\n", fetched)
	for _, err := range errs {
		cmd.Printf("  error: %v\n", err)
	}
	if len(errs) > 0 {
		return errors.New("some inputs could not be fetched")
	}
	return nil
}
