package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/takequiz"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// DetailScreen renders one quiz's metadata: summary, entities, sections,
// related topics. Pure view over an already-fetched quiz.
type DetailScreen struct {
	quiz *quiz.Quiz
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for the given quiz.
func New(q *quiz.Quiz) *DetailScreen {
	return &DetailScreen{quiz: q}
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Title() string {
	return "Quiz Details"
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "T", Description: "Take quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "t", "enter":
			// A fresh engine per entry: a prior attempt's answers must
			// never leak into a new one.
			q := s.quiz
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: takequiz.New(q.Title, q.Questions)}
			}
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	q := s.quiz
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)
	headingStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	centered(titleStyle, q.Title)
	centered(dimStyle, fmt.Sprintf("%d questions  ·  generated %s",
		len(q.Questions), q.CreatedAt.Format("Jan 02, 2006")))
	b.WriteString("\n")

	wrapWidth := min(width-8, 76)
	summary := lipgloss.NewStyle().Foreground(theme.Text).Width(wrapWidth).Render(q.Summary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n\n")

	if !q.KeyEntities.IsEmpty() {
		centered(headingStyle, "Key Entities")
		for _, group := range []struct {
			label string
			names []string
		}{
			{"People", q.KeyEntities.People},
			{"Organizations", q.KeyEntities.Organizations},
			{"Locations", q.KeyEntities.Locations},
		} {
			if len(group.names) == 0 {
				continue
			}
			centered(textStyle, fmt.Sprintf("%s: %s", group.label, strings.Join(group.names, ", ")))
		}
		b.WriteString("\n")
	}

	if len(q.Sections) > 0 {
		centered(headingStyle, "Sections")
		centered(textStyle, strings.Join(q.Sections, "  ·  "))
		b.WriteString("\n")
	}

	if len(q.RelatedTopics) > 0 {
		centered(headingStyle, "Related Topics")
		centered(textStyle, strings.Join(q.RelatedTopics, "  ·  "))
		b.WriteString("\n")
	}

	centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		"Press T to take this quiz")

	return b.String()
}
