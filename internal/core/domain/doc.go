// Package domain defines the core business entities for the aoc CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Puzzle: A single Advent of Code day
//   - Answers: The solutions to both parts of a day
//   - Result: A timed solver run with its answers
//   - Settings: Application configuration values
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
