package takequiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/assessment"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
)

// TakeQuizScreen drives one quiz-taking session over an assessment engine.
// The engine's lifetime is the screen's lifetime: leaving drops the attempt.
type TakeQuizScreen struct {
	engine        *assessment.Engine
	current       int
	cursor        int
	confirmSubmit bool
}

var _ screen.Screen = (*TakeQuizScreen)(nil)
var _ screen.KeyHintProvider = (*TakeQuizScreen)(nil)

// New creates a quiz-taking screen with a fresh engine.
func New(title string, questions []quiz.Question) *TakeQuizScreen {
	return &TakeQuizScreen{
		engine: assessment.New(title, questions),
	}
}

func (s *TakeQuizScreen) Init() tea.Cmd {
	return nil
}

func (s *TakeQuizScreen) Title() string {
	if s.engine.Status() == assessment.StatusSubmitted {
		return "Results"
	}
	return "Take Quiz"
}

func (s *TakeQuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	if s.engine.Status() == assessment.StatusSubmitted {
		return []layout.KeyHint{
			{Key: "←→", Description: "Review"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Options"},
		{Key: "Enter", Description: "Pick"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *TakeQuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmSubmit {
		return s.handleConfirmKey(kmsg)
	}
	if s.engine.Status() == assessment.StatusSubmitted {
		return s.handleResultsKey(kmsg)
	}
	return s.handleQuestionKey(kmsg)
}

func (s *TakeQuizScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		s.confirmSubmit = false
		s.submit()
	case "n", "N", "esc":
		s.confirmSubmit = false
	}
	return s, nil
}

func (s *TakeQuizScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if s.current > 0 {
			s.current--
		}
	case "right", "l":
		if s.current < s.engine.QuestionCount()-1 {
			s.current++
		}
	case "r":
		s.engine.Retry()
		s.current = 0
		s.cursor = 0
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *TakeQuizScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.engine.QuestionCount() == 0 {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < quiz.OptionCount-1 {
			s.cursor++
		}
	case "enter", " ":
		s.selectOption(s.cursor)
	case "a", "b", "c", "d":
		s.selectOption(int(msg.String()[0] - 'a'))
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.syncCursor()
		}
	case "right", "l":
		if s.current < s.engine.QuestionCount()-1 {
			s.current++
			s.syncCursor()
		}
	case "s":
		if s.engine.AnsweredCount() < s.engine.QuestionCount() {
			// Unanswered questions score as wrong; make sure that's wanted.
			s.confirmSubmit = true
		} else {
			s.submit()
		}
	}
	return s, nil
}

// selectOption records the option under index i and advances to the next
// question, which is where the user almost always wants to be.
func (s *TakeQuizScreen) selectOption(i int) {
	q := s.engine.Question(s.current)
	if i < 0 || i >= len(q.Options) {
		return
	}
	s.engine.Select(s.current, q.Options[i])
	if s.current < s.engine.QuestionCount()-1 {
		s.current++
		s.syncCursor()
	}
}

// syncCursor points the cursor at the current question's recorded answer,
// or the first option when it has none.
func (s *TakeQuizScreen) syncCursor() {
	s.cursor = 0
	answer, ok := s.engine.Answer(s.current)
	if !ok {
		return
	}
	for i, opt := range s.engine.Question(s.current).Options {
		if opt == answer {
			s.cursor = i
			return
		}
	}
}

func (s *TakeQuizScreen) submit() {
	s.engine.Submit()
	s.current = 0
}
