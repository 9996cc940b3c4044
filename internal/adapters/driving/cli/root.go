// Package cli implements the aoc command line interface with cobra.
//
// Commands talk to core services through the driving ports; wiring the
// concrete adapters happens once in initServices, lazily, so commands
// like version never touch the filesystem.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/aocweb"
	configfile "github.com/puzzlekit/aoc-cli/internal/adapters/driven/config/file"
	inputfile "github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/file"
	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
	"github.com/puzzlekit/aoc-cli/internal/core/services"
	"github.com/puzzlekit/aoc-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Configuration keys in config.toml.
const (
	keySession        = "session"
	keyInputDir       = "input.dir"
	keyFetchRate      = "fetch.rate"
	keyFetchUserAgent = "fetch.user_agent"
)

// Persistent flags.
var (
	flagVerbose   bool
	flagInputDir  string
	flagConfigDir string
	flagDataDir   string
)

// Services wired by initServices.
var (
	configStore     driven.ConfigStore
	inputStore      driven.InputStore
	resultStore     driven.ResultStore
	metadataStore   *sqlite.Store
	registryService driving.SolverRegistry
	runnerService   driving.Runner
	fetchService    driving.FetchService
	watchService    driving.Watcher
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2022 solutions",
	Long: `Solvers for the Advent of Code 2022 puzzles.

Inputs live in an input directory (input_files/ by default), one file
per day. With a session cookie configured they are downloaded on
demand; otherwise drop them in place by hand.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "directory holding dayN.txt input files")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.aoc)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "results database directory (default ~/.aoc/data)")
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with a context, so Ctrl-C
// cancels long solves, watches and downloads.
func ExecuteContext(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// initServices wires adapters and services together. Idempotent; the
// first command that needs services calls it.
func initServices() error {
	if runnerService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening configuration: %w", err)
	}
	configStore = cfg

	settings := loadSettings(cfg)

	store, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	metadataStore = store
	resultStore = store.ResultStore()

	inputStore = inputfile.NewInputStore(settings.InputDir)

	var fetcher driven.InputFetcher
	if settings.Session != "" {
		fetcher = aocweb.NewClient(settings.Session, settings.UserAgent,
			aocweb.WithRateLimit(settings.FetchRate))
	}

	registry := services.NewSolverRegistry()
	registryService = registry
	runnerService = services.NewRunner(registry, inputStore, resultStore)
	fetchService = services.NewFetchService(registry, inputStore, fetcher)
	watchService = services.NewWatchService(runnerService, inputStore)
	return nil
}

// loadSettings merges flags over config values over defaults.
func loadSettings(cfg driven.ConfigStore) domain.Settings {
	settings := domain.Settings{
		InputDir:  cfg.GetString(keyInputDir),
		Session:   cfg.GetString(keySession),
		FetchRate: cfg.GetFloat(keyFetchRate),
		UserAgent: cfg.GetString(keyFetchUserAgent),
	}
	if flagInputDir != "" {
		settings.InputDir = flagInputDir
	}
	settings.ApplyDefaults()
	return settings
}

func closeServices() {
	if metadataStore != nil {
		metadataStore.Close()
	}
}
