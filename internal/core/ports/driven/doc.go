// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Solver: Solves both parts of a daily puzzle
//   - InputStore: Puzzle input persistence
//   - ResultStore: Run result and accepted answer persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - InputFetcher: Downloads inputs from adventofcode.com. Without it
//     (no session cookie configured), inputs must be placed in the input
//     directory by hand.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or solver package
package driven
