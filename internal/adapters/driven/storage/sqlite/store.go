// Package sqlite persists run results and accepted answers in a local
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/puzzlekit/aoc-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed metadata store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the given data directory.
// If dataDir is empty, defaults to ~/.aoc/data/results.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".aoc", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "results.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ResultStore returns a ResultStore interface backed by this store.
func (s *Store) ResultStore() driven.ResultStore {
	return &resultStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// ==================== Result Store ====================

// resultStore implements driven.ResultStore.
type resultStore struct {
	store *Store
}

// Ensure resultStore implements the interface.
var _ driven.ResultStore = (*resultStore)(nil)

// SaveResult records a run.
func (s *resultStore) SaveResult(ctx context.Context, result *domain.Result) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO results (id, year, day, title, part1, part2, duration_ns, ran_at, verification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.Puzzle.Year, result.Puzzle.Day, result.Puzzle.Title,
		result.Answers.Part1, result.Answers.Part2,
		result.Duration.Nanoseconds(), result.RanAt.UTC(), string(result.Verification))
	if err != nil {
		return fmt.Errorf("inserting result: %w", err)
	}
	return nil
}

// ResultsByDay returns all recorded runs for a day, newest first.
func (s *resultStore) ResultsByDay(ctx context.Context, day int) ([]domain.Result, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, year, day, title, part1, part2, duration_ns, ran_at, verification
		FROM results WHERE day = ? ORDER BY ran_at DESC, rowid DESC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

// Results returns all recorded runs, newest first.
func (s *resultStore) Results(ctx context.Context) ([]domain.Result, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, year, day, title, part1, part2, duration_ns, ran_at, verification
		FROM results ORDER BY ran_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

// Accepted returns the accepted answers for a day.
func (s *resultStore) Accepted(ctx context.Context, day int) (domain.Answers, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT part1, part2 FROM accepted_answers WHERE day = ?
	`, day)

	var answers domain.Answers
	if err := row.Scan(&answers.Part1, &answers.Part2); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Answers{}, fmt.Errorf("%w: no accepted answers for day %d", domain.ErrNotFound, day)
		}
		return domain.Answers{}, fmt.Errorf("scanning accepted answers: %w", err)
	}
	return answers, nil
}

// Accept records answers as the accepted ones for a day.
func (s *resultStore) Accept(ctx context.Context, day int, answers domain.Answers) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO accepted_answers (day, part1, part2, accepted_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(day) DO UPDATE SET
			part1 = excluded.part1,
			part2 = excluded.part2,
			accepted_at = CURRENT_TIMESTAMP
	`, day, answers.Part1, answers.Part2)
	if err != nil {
		return fmt.Errorf("upserting accepted answers: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]domain.Result, error) {
	var results []domain.Result
	for rows.Next() {
		var r domain.Result
		var durationNS int64
		var ranAt time.Time
		var verification string
		if err := rows.Scan(&r.ID, &r.Puzzle.Year, &r.Puzzle.Day, &r.Puzzle.Title,
			&r.Answers.Part1, &r.Answers.Part2, &durationNS, &ranAt, &verification); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Duration = time.Duration(durationNS)
		r.RanAt = ranAt
		r.Verification = domain.Verification(verification)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}
