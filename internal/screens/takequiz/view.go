package takequiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/assessment"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/ui/components"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

func (s *TakeQuizScreen) View(width, height int) string {
	if s.engine.QuestionCount() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  This quiz has no questions.")
	}
	if s.confirmSubmit {
		return s.renderConfirm(width)
	}
	if s.engine.Status() == assessment.StatusSubmitted {
		return s.renderResults(width)
	}
	return s.renderQuestion(width)
}

func (s *TakeQuizScreen) renderConfirm(width int) string {
	unanswered := s.engine.QuestionCount() - s.engine.AnsweredCount()
	noun := "questions"
	if unanswered == 1 {
		noun = "question"
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d %s still unanswered.", unanswered, noun)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render("Unanswered questions count as incorrect. Submit anyway? (y/n)"))
	return b.String()
}

func (s *TakeQuizScreen) renderQuestion(width int) string {
	q := s.engine.Question(s.current)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.current+1, s.engine.QuestionCount()),
		s.engine.ProgressPercent()/100,
		true,
		min(width-8, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("[%s]", q.Difficulty.DisplayName()))))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(min(width-8, 76)).
			Render(q.Text)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderOptions(q)))
	return b.String()
}

// renderOptions draws the four options with cursor and selection markers.
func (s *TakeQuizScreen) renderOptions(q quiz.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, quiz.OptionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case s.engine.OptionState(s.current, opt) == assessment.OptionSelected:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
			line += "  ●"
		case i == s.cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *TakeQuizScreen) renderResults(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	scoreLine := fmt.Sprintf("Score: %d/%d  (%.0f%%)",
		s.engine.Score(), s.engine.QuestionCount(), s.engine.ScorePercent())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(scoreLine)))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(feedbackColor(s.engine.FeedbackTier())).
			Render(s.engine.FeedbackTier().Message())))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	q := s.engine.Question(s.current)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Reviewing %d/%d", s.current+1, s.engine.QuestionCount()))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(min(width-8, 76)).
			Render(q.Text)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderReviewOptions(q)))
	b.WriteString("\n")

	explanation := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Width(min(width-8, 76)).Render(q.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, explanation))
	b.WriteString("\n")

	return b.String()
}

// renderReviewOptions classifies each option after submission: the answer
// in green, a wrong pick in red, the rest dimmed.
func (s *TakeQuizScreen) renderReviewOptions(q quiz.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		line := fmt.Sprintf("  %s)  %s", quiz.OptionLabel(i), opt)

		switch s.engine.OptionState(s.current, opt) {
		case assessment.OptionCorrect:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line + "  ✓"))
		case assessment.OptionChosenWrong:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line + "  ✗"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func feedbackColor(tier assessment.FeedbackTier) color.Color {
	switch tier {
	case assessment.TierPerfect, assessment.TierGreat:
		return theme.Success
	case assessment.TierGood:
		return theme.Secondary
	case assessment.TierGettingThere:
		return theme.Accent
	default:
		return theme.Error
	}
}
