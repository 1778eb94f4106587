package fetch

import "github.com/abhisek/wikiquiz/internal/quiz"

// HistoryResultMsg is sent when a history listing resolves.
type HistoryResultMsg struct {
	Items []quiz.Summary
	Err   error
}

// DetailResultMsg is sent when a detail fetch resolves. Token identifies
// which issued call this resolution belongs to.
type DetailResultMsg struct {
	Token int
	Quiz  *quiz.Quiz
	Err   error
}

// GenerateResultMsg is sent when a generation request resolves.
type GenerateResultMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// PreviewResultMsg is sent when a preview lookup resolves. Preview is nil
// when no preview is available; lookup failures are folded into that case.
type PreviewResultMsg struct {
	Seq     int
	Preview *quiz.Preview
}
