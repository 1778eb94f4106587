// Package quiz defines the domain model shared by the API client, the
// retrieval layer, and the screens. A Quiz is immutable once fetched;
// taking a quiz operates on a derived copy of its question list.
package quiz

import (
	"fmt"
	"strings"
	"time"
)

// OptionCount is the fixed number of options per question. Options are
// positional: index 0 renders as "A", index 3 as "D".
const OptionCount = 4

// Quiz is a generated assessment tied to one source article.
type Quiz struct {
	// ID is server-assigned and unique.
	ID int `json:"id"`

	// URL is the source article the quiz was generated from.
	URL string `json:"url"`

	Title   string `json:"title"`
	Summary string `json:"summary"`

	// KeyEntities holds the entities extracted from the article.
	KeyEntities KeyEntities `json:"key_entities"`

	// Sections lists the article's section headings, in article order.
	Sections []string `json:"sections"`

	// Questions is the ordered, non-empty question list.
	// The wire key is "quiz" for historical reasons on the server side.
	Questions []Question `json:"quiz"`

	RelatedTopics []string  `json:"related_topics"`
	CreatedAt     time.Time `json:"created_at"`
}

// KeyEntities groups extracted entities by kind. Any group may be empty.
type KeyEntities struct {
	People        []string `json:"people,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
	Locations     []string `json:"locations,omitempty"`
}

// IsEmpty reports whether no entities were extracted at all.
func (k KeyEntities) IsEmpty() bool {
	return len(k.People) == 0 && len(k.Organizations) == 0 && len(k.Locations) == 0
}

// Question is one multiple-choice item.
type Question struct {
	// Text is the question prompt.
	Text string `json:"question"`

	// Options holds exactly OptionCount answer options, order significant.
	Options []string `json:"options"`

	// Answer is the canonical correct answer and must equal one of Options
	// by exact string match.
	Answer string `json:"answer"`

	Difficulty  Difficulty `json:"difficulty"`
	Explanation string     `json:"explanation"`
}

// Summary is the abbreviated quiz shape returned by the history listing.
// It never carries questions.
type Summary struct {
	ID            int       `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Preview is the lightweight title lookup used to reassure the user that a
// URL points at a real article before they submit it.
type Preview struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

// Difficulty is the per-question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a wire string to a Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// DisplayName returns the capitalized label shown in the UI.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// ValidateQuestion checks the structural invariants of a single question:
// four options, the answer present among them, and a known difficulty.
func ValidateQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %q: got %d options, want %d", q.Text, len(q.Options), OptionCount)
	}
	found := false
	for _, opt := range q.Options {
		if opt == q.Answer {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("question %q: answer %q not among options", q.Text, q.Answer)
	}
	if _, err := ParseDifficulty(string(q.Difficulty)); err != nil {
		return fmt.Errorf("question %q: %w", q.Text, err)
	}
	return nil
}

// Validate checks a full quiz: non-empty question list and every question
// structurally valid. Used on server output before it is trusted.
func Validate(q *Quiz) error {
	if q == nil {
		return fmt.Errorf("quiz is nil")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %d has no questions", q.ID)
	}
	for i, question := range q.Questions {
		if err := ValidateQuestion(question); err != nil {
			return fmt.Errorf("quiz %d question %d: %w", q.ID, i, err)
		}
	}
	return nil
}

// OptionLabel returns the positional label for an option index: "A" through "D".
func OptionLabel(i int) string {
	if i < 0 || i >= OptionCount {
		return "?"
	}
	return string(rune('A' + i))
}
