package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid puzzle input.
	// Solvers fail fast with this error rather than guessing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDay indicates a day number outside 1..25 or without a solver.
	ErrInvalidDay = errors.New("invalid day")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoInput indicates the puzzle input for a day is missing.
	// Run `aoc fetch` or place the file in the input directory.
	ErrNoInput = errors.New("puzzle input not available")

	// ErrNoSession indicates no adventofcode.com session cookie is
	// configured. Fetching inputs is disabled without it.
	ErrNoSession = errors.New("session cookie not configured")

	// ErrAnswerMismatch indicates a run disagreed with the accepted
	// answers recorded for the day.
	ErrAnswerMismatch = errors.New("answer mismatch")

	// ErrRateLimited indicates adventofcode.com rejected a request
	// for being too frequent.
	ErrRateLimited = errors.New("rate limited")
)
