package app

import (
	"fmt"
	"net/url"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/home"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Client *api.Client
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	orch       *fetch.Orchestrator
	serverHost string
	width      int
	height     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	orch := fetch.New(opts.Client)
	homeScreen := home.New(orch)

	host := opts.Client.BaseURL()
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		host = u.Host
	}

	return AppModel{
		router:     router.New(homeScreen),
		orch:       orch,
		serverHost: host,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	// Fetch completions mutate shared orchestrator state, so they are
	// applied here no matter which screen is active. The screen that
	// started the fetch may have been popped by the time it resolves;
	// without this the operation's loading flag would never clear.
	// Screens re-apply the same message for their own navigation, which
	// is a no-op on already-applied state.
	case fetch.HistoryResultMsg:
		m.orch.ApplyHistory(msg)
	case fetch.DetailResultMsg:
		m.orch.ApplyDetail(msg)
	case fetch.GenerateResultMsg:
		m.orch.ApplyGenerate(msg)
	case fetch.PreviewResultMsg:
		m.orch.ApplyPreview(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.serverHost, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to stack-depth
// defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
