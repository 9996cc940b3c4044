package domain

import "fmt"

// Year is the Advent of Code event year all bundled solvers belong to.
const Year = 2022

// FirstDay and LastDay bound the valid day numbers for an event.
const (
	FirstDay = 1
	LastDay  = 25
)

// Puzzle identifies a single Advent of Code day.
type Puzzle struct {
	// Year is the event year (always 2022 for the bundled solvers).
	Year int

	// Day is the day number, 1 through 25.
	Day int

	// Title is the official puzzle title, e.g. "Calorie Counting".
	Title string
}

// String returns a short human-readable identifier like "2022 day 5".
func (p Puzzle) String() string {
	return fmt.Sprintf("%d day %d", p.Year, p.Day)
}

// ValidDay returns true if day is a plausible Advent of Code day number.
func ValidDay(day int) bool {
	return day >= FirstDay && day <= LastDay
}

// Answers holds the solutions to both parts of a daily puzzle.
// Answers are strings rather than integers: most days produce numbers,
// but day 5 answers are crate labels and day 10 part 2 is a rendered
// CRT screen.
type Answers struct {
	Part1 string
	Part2 string
}

// IsZero returns true if neither part has an answer.
func (a Answers) IsZero() bool {
	return a.Part1 == "" && a.Part2 == ""
}

// Equal compares both parts.
func (a Answers) Equal(other Answers) bool {
	return a.Part1 == other.Part1 && a.Part2 == other.Part2
}
