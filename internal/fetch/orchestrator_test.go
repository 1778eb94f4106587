package fetch

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/quiz"
)

// stubClient implements Client with canned responses and call counters.
type stubClient struct {
	listResult  []quiz.Summary
	listErr     error
	getResults  map[int]*quiz.Quiz
	getErr      error
	genResult   *quiz.Quiz
	genErr      error
	prevResult  *quiz.Preview
	prevErr     error
	listCalls   int
	getCalls    int
	genCalls    int
	prevCalls   int
	genLastURL  string
	prevLastURL string
}

func (s *stubClient) ListQuizzes(_ context.Context) ([]quiz.Summary, error) {
	s.listCalls++
	return s.listResult, s.listErr
}

func (s *stubClient) GetQuiz(_ context.Context, id int) (*quiz.Quiz, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResults[id], nil
}

func (s *stubClient) GenerateQuiz(_ context.Context, articleURL string) (*quiz.Quiz, error) {
	s.genCalls++
	s.genLastURL = articleURL
	return s.genResult, s.genErr
}

func (s *stubClient) PreviewURL(_ context.Context, articleURL string) (*quiz.Preview, error) {
	s.prevCalls++
	s.prevLastURL = articleURL
	if s.prevErr != nil {
		return nil, s.prevErr
	}
	return s.prevResult, nil
}

func testQuiz(id int) *quiz.Quiz {
	return &quiz.Quiz{
		ID:    id,
		Title: "Test Quiz",
		Questions: []quiz.Question{{
			Text:        "Q?",
			Options:     []string{"a", "b", "c", "d"},
			Answer:      "a",
			Difficulty:  quiz.DifficultyEasy,
			Explanation: "because",
		}},
	}
}

func TestHistorySuccess(t *testing.T) {
	client := &stubClient{listResult: []quiz.Summary{{ID: 2}, {ID: 1}}}
	o := New(client)

	cmd := o.StartHistory()
	if !o.HistoryLoading() {
		t.Error("expected loading after start")
	}

	msg := cmd().(HistoryResultMsg)
	o.ApplyHistory(msg)

	if o.HistoryLoading() {
		t.Error("loading should clear on completion")
	}
	if len(o.History()) != 2 || o.History()[0].ID != 2 {
		t.Errorf("history = %+v, want server order preserved", o.History())
	}
	if o.Err() != "" {
		t.Errorf("unexpected error %q", o.Err())
	}
}

func TestHistoryFailureDiscardsStaleRows(t *testing.T) {
	client := &stubClient{listResult: []quiz.Summary{{ID: 1}}}
	o := New(client)
	o.ApplyHistory(o.StartHistory()().(HistoryResultMsg))
	if len(o.History()) != 1 {
		t.Fatal("expected one row loaded")
	}

	client.listErr = errors.New("connection refused")
	o.ApplyHistory(o.StartHistory()().(HistoryResultMsg))

	if o.History() != nil {
		t.Error("failed reload must show empty state, not stale rows")
	}
	if o.Err() != "Could not load quiz history." {
		t.Errorf("Err = %q", o.Err())
	}
	if o.HistoryLoading() {
		t.Error("loading must clear on failure too")
	}
}

func TestDetailFailureKeepsSelected(t *testing.T) {
	client := &stubClient{getResults: map[int]*quiz.Quiz{3: testQuiz(3)}}
	o := New(client)
	o.ApplyDetail(o.StartDetail(3)().(DetailResultMsg))
	if o.Selected() == nil || o.Selected().ID != 3 {
		t.Fatal("expected quiz 3 selected")
	}

	client.getErr = &api.Error{Status: http.StatusNotFound, Detail: "not found"}
	o.ApplyDetail(o.StartDetail(7)().(DetailResultMsg))

	if o.Err() != "not found" {
		t.Errorf("Err = %q, want server detail verbatim", o.Err())
	}
	if o.Selected() == nil || o.Selected().ID != 3 {
		t.Error("selected quiz must remain unchanged after a failed fetch")
	}
	if o.DetailPending() {
		t.Error("detail flag must clear on failure")
	}
}

func TestDetailFencingLatestIssuedWins(t *testing.T) {
	client := &stubClient{getResults: map[int]*quiz.Quiz{
		1: testQuiz(1),
		2: testQuiz(2),
	}}
	o := New(client)

	cmdA := o.StartDetail(1)
	cmdB := o.StartDetail(2)

	// B resolves first, then the slow A straggles in.
	msgB := cmdB().(DetailResultMsg)
	msgA := cmdA().(DetailResultMsg)

	if !o.ApplyDetail(msgB) {
		t.Error("latest-issued resolution must be applied")
	}
	if o.ApplyDetail(msgA) {
		t.Error("stale resolution must be dropped")
	}
	if o.Selected() == nil || o.Selected().ID != 2 {
		t.Errorf("selected = %+v, want quiz 2 (latest issued)", o.Selected())
	}
	if o.DetailPending() {
		t.Error("flag should be clear after the live call resolved")
	}
}

func TestDetailPendingIsGlobal(t *testing.T) {
	o := New(&stubClient{getResults: map[int]*quiz.Quiz{1: testQuiz(1)}})
	o.StartDetail(1)
	if !o.DetailPending() {
		t.Error("any in-flight detail fetch must set the shared flag")
	}
}

func TestGenerateBlankURLNoCall(t *testing.T) {
	client := &stubClient{}
	o := New(client)
	o.err = "previous"

	if cmd := o.StartGenerate("   "); cmd != nil {
		t.Error("blank URL must not issue a call")
	}
	if client.genCalls != 0 {
		t.Error("no network call expected")
	}
	if o.Generating() {
		t.Error("no state change expected")
	}
	if o.Err() != "previous" {
		t.Error("refused submission must not touch the error slot")
	}
}

func TestGenerateSuccess(t *testing.T) {
	client := &stubClient{genResult: testQuiz(9)}
	o := New(client)

	cmd := o.StartGenerate("  https://en.wikipedia.org/wiki/Go  ")
	if !o.Generating() {
		t.Error("expected generating after start")
	}
	o.ApplyGenerate(cmd().(GenerateResultMsg))

	if client.genLastURL != "https://en.wikipedia.org/wiki/Go" {
		t.Errorf("URL should be trimmed, got %q", client.genLastURL)
	}
	if o.Generated() == nil || o.Generated().ID != 9 {
		t.Error("expected generated quiz stored")
	}
	if o.Generating() {
		t.Error("generating must clear on success")
	}
}

func TestGenerateFailureUsesServerDetail(t *testing.T) {
	client := &stubClient{genErr: &api.Error{Status: 400, Detail: "URL must be a valid Wikipedia article URL"}}
	o := New(client)
	o.ApplyGenerate(o.StartGenerate("https://example.com/page")().(GenerateResultMsg))

	if o.Err() != "URL must be a valid Wikipedia article URL" {
		t.Errorf("Err = %q", o.Err())
	}

	client.genErr = errors.New("dial tcp: refused")
	o.ApplyGenerate(o.StartGenerate("https://example.com/page")().(GenerateResultMsg))
	if o.Err() != "Quiz generation failed. Please try again." {
		t.Errorf("Err = %q, want generic fallback", o.Err())
	}
}

func TestPreviewShortCircuitsNonWikiURL(t *testing.T) {
	client := &stubClient{prevResult: &quiz.Preview{Title: "x", Valid: true}}
	o := New(client)

	if cmd := o.StartPreview("https://example.com/not-wiki"); cmd != nil {
		t.Error("non-wiki URL must not issue a call")
	}
	if client.prevCalls != 0 {
		t.Error("no network call expected")
	}
	if o.Preview() != nil {
		t.Error("preview result must be nil")
	}
}

func TestPreviewFailureIsSilent(t *testing.T) {
	client := &stubClient{prevErr: errors.New("boom")}
	o := New(client)
	o.err = "unrelated"

	cmd := o.StartPreview("https://en.wikipedia.org/wiki/Go")
	o.ApplyPreview(cmd().(PreviewResultMsg))

	if o.Preview() != nil {
		t.Error("failed preview resolves to no preview")
	}
	if o.Err() != "unrelated" {
		t.Error("preview must never write the shared error slot")
	}
	if o.PreviewPending() {
		t.Error("preview loading must clear")
	}
}

func TestPreviewStaleSeqDropped(t *testing.T) {
	client := &stubClient{prevResult: &quiz.Preview{Title: "Old", Valid: true}}
	o := New(client)

	cmdOld := o.StartPreview("https://en.wikipedia.org/wiki/Old")
	msgOld := cmdOld().(PreviewResultMsg)

	client.prevResult = &quiz.Preview{Title: "New", Valid: true}
	cmdNew := o.StartPreview("https://en.wikipedia.org/wiki/New")
	msgNew := cmdNew().(PreviewResultMsg)

	o.ApplyPreview(msgOld)
	if o.Preview() != nil {
		t.Error("stale preview must be dropped")
	}
	o.ApplyPreview(msgNew)
	if o.Preview() == nil || o.Preview().Title != "New" {
		t.Errorf("preview = %+v, want the newer lookup", o.Preview())
	}
}

func TestEveryStartClearsSharedError(t *testing.T) {
	client := &stubClient{getResults: map[int]*quiz.Quiz{}}
	o := New(client)

	starts := []struct {
		name  string
		start func() any
	}{
		{"history", func() any { return o.StartHistory() }},
		{"detail", func() any { return o.StartDetail(1) }},
		{"generate", func() any { return o.StartGenerate("https://en.wikipedia.org/wiki/Go") }},
	}

	for _, tt := range starts {
		o.err = "stale failure"
		tt.start()
		if o.Err() != "" {
			t.Errorf("%s: starting an attempt must clear the prior error", tt.name)
		}
	}
}
