// Package tui renders the interactive progress view for batch solver
// runs, following the Elm architecture with Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puzzlekit/aoc-cli/internal/adapters/driving/tui/styles"
	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driving"
)

// resultMsg carries one completed day from the runner goroutine.
type resultMsg domain.Result

// doneMsg carries the final outcome of the batch.
type doneMsg struct {
	results []domain.Result
	err     error
}

// RunAllModel is the Bubbletea model for the run-all progress view.
type RunAllModel struct {
	runner driving.Runner
	days   []int

	ctx    context.Context
	cancel context.CancelFunc

	resultCh chan domain.Result
	doneCh   chan doneMsg

	results []domain.Result
	err     error
	done    bool
	started time.Time

	spinner  spinner.Model
	progress progress.Model
	styles   *styles.Styles
	width    int
}

// NewRunAll creates the progress model for solving every day.
func NewRunAll(ctx context.Context, runner driving.Runner, registry driving.SolverRegistry) *RunAllModel {
	ctx, cancel := context.WithCancel(ctx)

	st := styles.NewStyles(nil)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Muted

	days := registry.Days()
	return &RunAllModel{
		runner:   runner,
		days:     days,
		ctx:      ctx,
		cancel:   cancel,
		resultCh: make(chan domain.Result, len(days)),
		doneCh:   make(chan doneMsg, 1),
		started:  time.Now(),
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		styles:   st,
		width:    80,
	}
}

// Err returns the batch error, if any, once the program has finished.
func (m *RunAllModel) Err() error {
	return m.err
}

// Results returns the completed runs.
func (m *RunAllModel) Results() []domain.Result {
	return m.results
}

// Init starts the batch run and the spinner.
func (m *RunAllModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startRun(), m.waitForResult())
}

// startRun executes the batch on its own goroutine, streaming each
// completed day through resultCh.
func (m *RunAllModel) startRun() tea.Cmd {
	return func() tea.Msg {
		results, err := m.runner.RunAll(m.ctx, func(r domain.Result) {
			m.resultCh <- r
		})
		return doneMsg{results: results, err: err}
	}
}

// waitForResult delivers the next streamed day result.
func (m *RunAllModel) waitForResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-m.resultCh:
			return resultMsg(r)
		case <-m.ctx.Done():
			return nil
		}
	}
}

// Update handles messages.
func (m *RunAllModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-10, 60)

	case resultMsg:
		m.results = append(m.results, domain.Result(msg))
		return m, m.waitForResult()

	case doneMsg:
		// The authoritative result list comes from RunAll itself;
		// late entries on the channel are duplicates of these.
		if msg.results != nil {
			m.results = msg.results
		}
		m.err = msg.err
		m.done = true
		m.cancel()
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// View renders the progress view.
func (m *RunAllModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Advent of Code %d", domain.Year)))
	b.WriteString("\n\n")

	for _, r := range m.results {
		b.WriteString(m.renderResult(r))
	}

	if !m.done {
		b.WriteString(fmt.Sprintf("%s solving day %d...\n", m.spinner.View(), m.nextDay()))
	}

	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.completion()))
	b.WriteString("\n")

	if m.done {
		b.WriteString(m.renderSummary())
	} else {
		b.WriteString(m.styles.Muted.Render("q to cancel"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *RunAllModel) renderResult(r domain.Result) string {
	marker := m.styles.Success.Render("ok")
	if r.Verification == domain.VerifyMismatch {
		marker = m.styles.Error.Render("!!")
	}

	line := fmt.Sprintf("%s day %2d  %-28s %8.1fms  %s\n",
		marker, r.Puzzle.Day, r.Puzzle.Title, r.Millis(),
		m.styles.Answer.Render(compactAnswers(r.Answers)))
	return line
}

func (m *RunAllModel) renderSummary() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("failed: %v", m.err)) + "\n"
	}
	return m.styles.Success.Render(fmt.Sprintf("Solved %d days in %.1fs",
		len(m.results), time.Since(m.started).Seconds())) + "\n"
}

// nextDay is the first registered day without a completed result.
func (m *RunAllModel) nextDay() int {
	seen := make(map[int]bool, len(m.results))
	for _, r := range m.results {
		seen[r.Puzzle.Day] = true
	}
	for _, day := range m.days {
		if !seen[day] {
			return day
		}
	}
	return 0
}

func (m *RunAllModel) completion() float64 {
	if len(m.days) == 0 {
		return 1
	}
	return float64(len(m.results)) / float64(len(m.days))
}

// compactAnswers renders both answers on one line, eliding multi-line
// renders like the day 10 CRT screen.
func compactAnswers(a domain.Answers) string {
	part2 := a.Part2
	if i := strings.IndexByte(part2, '\n'); i >= 0 {
		part2 = part2[:i] + "..."
	}
	return fmt.Sprintf("%s / %s", a.Part1, part2)
}
