package domain

// Settings holds application configuration resolved from the config
// store and CLI flags. Zero values fall back to defaults.
type Settings struct {
	// InputDir is the directory holding puzzle input files (dayN.txt).
	InputDir string

	// Session is the adventofcode.com session cookie value.
	Session string

	// Year is the event year to fetch inputs for.
	Year int

	// FetchRate is the maximum outbound requests per second to
	// adventofcode.com. The site asks tools to throttle themselves.
	FetchRate float64

	// UserAgent identifies this tool on outbound requests.
	UserAgent string
}

// Default settings values.
const (
	DefaultInputDir  = "input_files"
	DefaultFetchRate = 0.5
	DefaultUserAgent = "aoc-cli (github.com/puzzlekit/aoc-cli)"
)

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		InputDir:  DefaultInputDir,
		Year:      Year,
		FetchRate: DefaultFetchRate,
		UserAgent: DefaultUserAgent,
	}
}

// ApplyDefaults fills any zero-valued field from DefaultSettings.
func (s *Settings) ApplyDefaults() {
	def := DefaultSettings()
	if s.InputDir == "" {
		s.InputDir = def.InputDir
	}
	if s.Year == 0 {
		s.Year = def.Year
	}
	if s.FetchRate <= 0 {
		s.FetchRate = def.FetchRate
	}
	if s.UserAgent == "" {
		s.UserAgent = def.UserAgent
	}
}
