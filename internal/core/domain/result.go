package domain

import "time"

// Verification describes how a run's answers compare to the accepted
// answers recorded for that day.
type Verification string

// Verification outcomes.
const (
	// VerifyNone means no accepted answers exist for the day yet.
	VerifyNone Verification = "none"

	// VerifyMatch means the run reproduced the accepted answers.
	VerifyMatch Verification = "match"

	// VerifyMismatch means the run disagreed with the accepted answers.
	VerifyMismatch Verification = "mismatch"
)

// Result is a single timed solver run.
type Result struct {
	// ID is a unique run identifier.
	ID string

	// Puzzle identifies the day that was solved.
	Puzzle Puzzle

	// Answers are the computed part 1 and part 2 answers.
	Answers Answers

	// Duration is the wall-clock time the solver took.
	Duration time.Duration

	// RanAt is when the run started.
	RanAt time.Time

	// Verification records the comparison against accepted answers.
	Verification Verification
}

// Millis returns the run duration in milliseconds, matching the
// per-day timing the runner reports.
func (r Result) Millis() float64 {
	return float64(r.Duration.Nanoseconds()) / 1e6
}
