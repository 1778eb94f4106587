package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/generate"
	"github.com/abhisek/wikiquiz/internal/screens/history"
	"github.com/abhisek/wikiquiz/internal/ui/components"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

const banner = `
 __        ___ _    _  ___        _
 \ \      / (_) | _(_)/ _ \ _   _(_)____
  \ \ /\ / /| | |/ / | | | | | | | |_  /
   \ V  V / | |   <| | |_| | |_| | |/ /
    \_/\_/  |_|_|\_\_|\__\_\\__,_|_/___|
`

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The orchestrator is shared by every screen
// reached from here so retrieval state survives navigation between them.
func New(orch *fetch.Orchestrator) *HomeScreen {
	items := []components.MenuItem{
		{Label: "GENERATE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: generate.New(orch)}
			}
		}},
		{Label: "QUIZ HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(orch)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(banner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Turn any Wikipedia article into a quiz."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
