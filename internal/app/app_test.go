package app

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/fetch"
	"github.com/abhisek/wikiquiz/internal/quiz"
)

func newTestModel() AppModel {
	client := api.New("http://localhost:8000", time.Second)
	return newAppModel(Options{Client: client})
}

// Completions must clear the orchestrator's loading flags even when the
// screen that started the fetch is no longer on the stack. The home screen
// is active in all of these tests, so the message reaches no screen that
// would apply it itself.
func TestGenerateResultAppliedWhileOnHomeScreen(t *testing.T) {
	m := newTestModel()

	if cmd := m.orch.StartGenerate("https://en.wikipedia.org/wiki/Go"); cmd == nil {
		t.Fatal("expected a generate command")
	}
	if !m.orch.Generating() {
		t.Fatal("expected generating flag set")
	}

	q := &quiz.Quiz{ID: 1, Title: "Go"}
	model, _ := m.Update(fetch.GenerateResultMsg{Quiz: q})
	m = model.(AppModel)

	if m.orch.Generating() {
		t.Error("generating flag should clear even with no generate screen active")
	}
	if m.orch.Generated() != q {
		t.Error("generated quiz should be recorded")
	}
}

func TestDetailResultAppliedWhileOnHomeScreen(t *testing.T) {
	m := newTestModel()

	if cmd := m.orch.StartDetail(7); cmd == nil {
		t.Fatal("expected a detail command")
	}
	if !m.orch.DetailPending() {
		t.Fatal("expected detail pending")
	}

	model, _ := m.Update(fetch.DetailResultMsg{Token: 1, Err: errors.New("boom")})
	m = model.(AppModel)

	if m.orch.DetailPending() {
		t.Error("detail pending flag should clear even with no history screen active")
	}
}

func TestHistoryAndPreviewResultsAppliedWhileOnHomeScreen(t *testing.T) {
	m := newTestModel()

	m.orch.StartHistory()
	model, _ := m.Update(fetch.HistoryResultMsg{Items: []quiz.Summary{{ID: 1, Title: "Go"}}})
	m = model.(AppModel)
	if m.orch.HistoryLoading() {
		t.Error("history loading flag should clear")
	}
	if len(m.orch.History()) != 1 {
		t.Error("history rows should be recorded")
	}

	m.orch.StartPreview("https://en.wikipedia.org/wiki/Go")
	model, _ = m.Update(fetch.PreviewResultMsg{Seq: 1, Preview: &quiz.Preview{Title: "Go"}})
	m = model.(AppModel)
	if m.orch.PreviewPending() {
		t.Error("preview pending flag should clear")
	}
	if m.orch.Preview() == nil {
		t.Error("preview should be recorded")
	}
}
