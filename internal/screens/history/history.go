package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/detail"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// HistoryScreen lists previously generated quizzes.
type HistoryScreen struct {
	orch     *fetch.Orchestrator
	selected int
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen over the shared orchestrator.
func New(orch *fetch.Orchestrator) *HistoryScreen {
	return &HistoryScreen{orch: orch}
}

// Init loads the history. Entering the screen always refreshes, which is
// also how quizzes generated since the last visit appear.
func (s *HistoryScreen) Init() tea.Cmd {
	return s.orch.StartHistory()
}

func (s *HistoryScreen) Title() string {
	return "Quiz History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "R", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.HistoryResultMsg:
		s.orch.ApplyHistory(msg)
		s.loaded = true
		if s.selected >= len(s.orch.History()) {
			s.selected = 0
		}
		return s, nil

	case fetch.DetailResultMsg:
		applied := s.orch.ApplyDetail(msg)
		if !applied {
			// A newer fetch owns the slot; this resolution is dropped.
			return s, nil
		}
		if q := s.orch.Selected(); msg.Err == nil && q != nil {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail.New(q)}
			}
		}
		return s, nil

	case tea.KeyMsg:
		items := s.orch.History()
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(items)-1 {
				s.selected++
			}
			return s, nil
		case "r":
			return s, s.orch.StartHistory()
		case "enter":
			// One detail fetch at a time, for every row.
			if s.orch.DetailPending() || s.selected >= len(items) {
				return s, nil
			}
			return s, s.orch.StartDetail(items[s.selected].ID)
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded || s.orch.HistoryLoading() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading quiz history...")
	}
	items := s.orch.History()
	errMsg := s.orch.Err()

	if errMsg != "" && len(items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress R to retry.", errMsg))
	}
	if len(items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Generate one from an article!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// A failed detail fetch shares the error slot; show it above the rows.
	if errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+errMsg)))
		b.WriteString("\n\n")
	}

	for i, item := range items {
		dateStr := item.CreatedAt.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		// Width-aware: never splits a rune and counts wide glyphs as
		// two cells.
		title := ansi.Truncate(item.Title, 40, "...")

		line := fmt.Sprintf("%s%-40s  %2d questions  %s", prefix, title, item.QuestionCount, dateStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.orch.DetailPending() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("Fetching quiz details...")))
		b.WriteString("\n")
	}

	return b.String()
}
