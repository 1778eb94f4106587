package generate

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/detail"
	"github.com/abhisek/wikiquiz/internal/ui/components"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// previewDebounce is how long typing must pause before a preview lookup.
const previewDebounce = 500 * time.Millisecond

// previewTickMsg fires after the debounce window. Only the tick matching
// the latest edit sequence triggers a lookup.
type previewTickMsg struct {
	seq int
}

// GenerateScreen is the "paste a URL, get a quiz" flow.
type GenerateScreen struct {
	orch        *fetch.Orchestrator
	input       components.TextInput
	debounceSeq int
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates the generate screen over the shared orchestrator.
func New(orch *fetch.Orchestrator) *GenerateScreen {
	return &GenerateScreen{
		orch:  orch,
		input: components.NewTextInput("https://en.wikipedia.org/wiki/...", 2048),
	}
}

func (s *GenerateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GenerateScreen) Title() string {
	return "Generate Quiz"
}

func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.GenerateResultMsg:
		s.orch.ApplyGenerate(msg)
		if q := s.orch.Generated(); msg.Err == nil && q != nil {
			// Hand off to the detail view without leaving the input form
			// on the stack; esc from the detail goes back to home.
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: detail.New(q)}
			}
		}
		return s, nil

	case fetch.PreviewResultMsg:
		s.orch.ApplyPreview(msg)
		return s, nil

	case previewTickMsg:
		if msg.seq != s.debounceSeq {
			return s, nil
		}
		return s, s.orch.StartPreview(s.input.Value())

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if s.orch.Generating() {
				return s, nil
			}
			return s, s.orch.StartGenerate(s.input.Value())
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if s.input.Value() != before {
		s.debounceSeq++
		seq := s.debounceSeq
		tick := tea.Tick(previewDebounce, func(time.Time) tea.Msg {
			return previewTickMsg{seq: seq}
		})
		return s, tea.Batch(cmd, tick)
	}
	return s, cmd
}

func (s *GenerateScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Paste a Wikipedia article URL"))
	b.WriteString("\n\n")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(min(width-8, 72)).
		Render(s.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.statusLine()))
	b.WriteString("\n")

	return b.String()
}

// statusLine picks the one line of feedback under the input: generation
// progress, an operation error, or the preview reassurance.
func (s *GenerateScreen) statusLine() string {
	switch {
	case s.orch.Generating():
		return lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Generating quiz... this can take a minute.")
	case s.orch.Err() != "":
		return lipgloss.NewStyle().Foreground(theme.Error).
			Render("Error: " + s.orch.Err())
	case s.orch.PreviewPending():
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Looking up article...")
	case s.orch.Preview() != nil && s.orch.Preview().Title != "":
		return lipgloss.NewStyle().Foreground(theme.Success).
			Render("Found: " + s.orch.Preview().Title)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Example: https://en.wikipedia.org/wiki/Marie_Curie")
	}
}
