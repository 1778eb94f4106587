// Package assessment is the state machine for taking a quiz: per-question
// answer selection, scoring on submit, and retry. It is fully headless; the
// take-quiz screen renders over it but imposes its own gating (whether to
// allow submitting with unanswered questions is a presentation policy, not
// an engine rule). Engine state lives only for one quiz-taking session and
// is never persisted.
package assessment

import "github.com/abhisek/wikiquiz/internal/quiz"

// Status is the engine lifecycle state.
type Status int

const (
	// StatusInProgress accepts answer selection.
	StatusInProgress Status = iota

	// StatusSubmitted has a computed score; only Retry leaves it.
	StatusSubmitted
)

// OptionState classifies one option of one question for display.
type OptionState int

const (
	// OptionNeutral is any option with nothing to say about it.
	OptionNeutral OptionState = iota

	// OptionSelected is the current selection while in progress.
	OptionSelected

	// OptionCorrect is the canonical answer, shown after submit.
	OptionCorrect

	// OptionChosenWrong is a wrong selection, shown after submit.
	OptionChosenWrong
)

// Engine scores one pass over a fixed, ordered question list. The question
// list never changes for the engine's lifetime; a new quiz-taking session
// gets a new Engine.
type Engine struct {
	title     string
	questions []quiz.Question
	answers   map[int]string
	status    Status
	score     int
}

// New creates an engine over the given questions. The slice is copied so a
// caller mutating its own slice cannot reach into the session.
func New(title string, questions []quiz.Question) *Engine {
	qs := make([]quiz.Question, len(questions))
	copy(qs, questions)
	return &Engine{
		title:     title,
		questions: qs,
		answers:   make(map[int]string),
	}
}

// Title returns the quiz title this session is for.
func (e *Engine) Title() string { return e.title }

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// QuestionCount returns the number of questions in the session.
func (e *Engine) QuestionCount() int { return len(e.questions) }

// Question returns the question at index i.
func (e *Engine) Question(i int) quiz.Question { return e.questions[i] }

// Questions returns the session's question list.
func (e *Engine) Questions() []quiz.Question { return e.questions }

// Select records option as the answer for question i, overwriting any prior
// selection. It is a no-op after submit and for out-of-range indices. The
// option string is stored verbatim; an option not belonging to the question
// simply never scores.
func (e *Engine) Select(i int, option string) {
	if e.status != StatusInProgress {
		return
	}
	if i < 0 || i >= len(e.questions) {
		return
	}
	e.answers[i] = option
}

// Answer returns the recorded selection for question i, and whether one exists.
func (e *Engine) Answer(i int) (string, bool) {
	a, ok := e.answers[i]
	return a, ok
}

// AnsweredCount returns how many questions have a recorded selection.
func (e *Engine) AnsweredCount() int { return len(e.answers) }

// Submit scores the current answers and moves to Submitted. Partial answer
// sets are fine: an unanswered question scores as incorrect. Calling Submit
// again after submit is a no-op.
func (e *Engine) Submit() {
	if e.status != StatusInProgress {
		return
	}
	score := 0
	for i, q := range e.questions {
		if e.answers[i] == q.Answer {
			score++
		}
	}
	e.score = score
	e.status = StatusSubmitted
}

// Retry clears all answers and the score and returns to InProgress. Safe to
// call in any state.
func (e *Engine) Retry() {
	e.answers = make(map[int]string)
	e.score = 0
	e.status = StatusInProgress
}

// Score returns the number of correct answers. Meaningful after Submit.
func (e *Engine) Score() int { return e.score }

// ProgressPercent returns answered questions as a percentage of the total,
// 0 for an empty question list.
func (e *Engine) ProgressPercent() float64 {
	if len(e.questions) == 0 {
		return 0
	}
	return float64(len(e.answers)) / float64(len(e.questions)) * 100
}

// ScorePercent returns the score as a percentage of the total, 0 for an
// empty question list.
func (e *Engine) ScorePercent() float64 {
	if len(e.questions) == 0 {
		return 0
	}
	return float64(e.score) / float64(len(e.questions)) * 100
}

// OptionState classifies one option of question i for rendering. In
// progress: selected or neutral. Submitted: the canonical answer is
// correct, the user's wrong pick is chosen-wrong, everything else neutral.
func (e *Engine) OptionState(i int, option string) OptionState {
	if i < 0 || i >= len(e.questions) {
		return OptionNeutral
	}
	selected, answered := e.answers[i]

	if e.status == StatusInProgress {
		if answered && option == selected {
			return OptionSelected
		}
		return OptionNeutral
	}

	if option == e.questions[i].Answer {
		return OptionCorrect
	}
	if answered && option == selected {
		return OptionChosenWrong
	}
	return OptionNeutral
}
