package generate

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screens/detail"
)

type stubClient struct {
	genResult  *quiz.Quiz
	genErr     error
	prevResult *quiz.Preview
	prevCalls  int
}

func (s *stubClient) GenerateQuiz(_ context.Context, _ string) (*quiz.Quiz, error) {
	return s.genResult, s.genErr
}

func (s *stubClient) ListQuizzes(_ context.Context) ([]quiz.Summary, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) GetQuiz(_ context.Context, _ int) (*quiz.Quiz, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) PreviewURL(_ context.Context, _ string) (*quiz.Preview, error) {
	s.prevCalls++
	return s.prevResult, nil
}

func typeString(s *GenerateScreen, text string) *GenerateScreen {
	scr := s
	for _, r := range text {
		updated, _ := scr.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		scr = updated.(*GenerateScreen)
	}
	return scr
}

func generatedQuiz() *quiz.Quiz {
	return &quiz.Quiz{ID: 1, Title: "Go", Questions: []quiz.Question{{
		Text: "Q?", Options: []string{"a", "b", "c", "d"}, Answer: "a",
		Difficulty: quiz.DifficultyEasy,
	}}}
}

func TestEnterWithBlankInputDoesNothing(t *testing.T) {
	s := New(fetch.New(&stubClient{}))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input must not issue a generation request")
	}
}

func TestTypingSchedulesDebouncedPreview(t *testing.T) {
	client := &stubClient{prevResult: &quiz.Preview{Title: "Go", Valid: true}}
	s := New(fetch.New(client))

	s = typeString(s, "x")
	if s.debounceSeq == 0 {
		t.Fatal("an edit must bump the debounce sequence")
	}

	// A stale tick (older sequence) must not trigger a lookup.
	_, cmd := s.Update(previewTickMsg{seq: s.debounceSeq - 1})
	if cmd != nil {
		t.Error("stale debounce tick must be ignored")
	}

	// The live tick runs the preview through the orchestrator, which
	// short-circuits non-wiki text without a network call.
	_, cmd = s.Update(previewTickMsg{seq: s.debounceSeq})
	if cmd != nil {
		t.Error("non-wiki input should short-circuit without a call")
	}
	if client.prevCalls != 0 {
		t.Error("no network call expected for non-wiki input")
	}
}

func TestPreviewLookupForWikiURL(t *testing.T) {
	client := &stubClient{prevResult: &quiz.Preview{Title: "Go (programming language)", Valid: true}}
	s := New(fetch.New(client))

	s = typeString(s, "https://en.wikipedia.org/wiki/Go")
	_, cmd := s.Update(previewTickMsg{seq: s.debounceSeq})
	if cmd == nil {
		t.Fatal("wiki URL should trigger a preview lookup")
	}
	msg := cmd().(fetch.PreviewResultMsg)
	s.Update(msg)

	if p := s.orch.Preview(); p == nil || p.Title != "Go (programming language)" {
		t.Errorf("preview = %+v", p)
	}
}

func TestGenerateSuccessReplacesWithDetail(t *testing.T) {
	client := &stubClient{genResult: generatedQuiz()}
	s := New(fetch.New(client))
	s = typeString(s, "https://en.wikipedia.org/wiki/Go")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with a URL must start generation")
	}
	if !s.orch.Generating() {
		t.Error("expected generating state")
	}

	msg := cmd().(fetch.GenerateResultMsg)
	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("success must navigate to the quiz")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a replace message so esc from the quiz skips the form")
	}
	if _, ok := replace.Screen.(*detail.DetailScreen); !ok {
		t.Errorf("replacement screen = %T, want *detail.DetailScreen", replace.Screen)
	}
}

func TestGenerateFailureStaysPut(t *testing.T) {
	client := &stubClient{genErr: errors.New("boom")}
	s := New(fetch.New(client))
	s = typeString(s, "https://example.com/page")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(fetch.GenerateResultMsg)
	_, cmd = s.Update(msg)
	if cmd != nil {
		t.Error("failure must not navigate")
	}
	if s.orch.Err() == "" {
		t.Error("expected error surfaced")
	}
	if s.View(80, 24) == "" {
		t.Error("error state should render")
	}
}

func TestEnterWhileGeneratingIgnored(t *testing.T) {
	client := &stubClient{genResult: generatedQuiz()}
	s := New(fetch.New(client))
	s = typeString(s, "https://en.wikipedia.org/wiki/Go")

	_, first := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if first == nil {
		t.Fatal("first enter should start generation")
	}
	_, second := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if second != nil {
		t.Error("a second submission while one is in flight must be ignored")
	}
}
