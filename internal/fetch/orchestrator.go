// Package fetch owns the loading/error/result state for the client's four
// asynchronous operations: history listing, detail fetch, quiz generation,
// and URL preview. The Orchestrator itself is synchronous and headless;
// Start* methods mutate state and hand back a tea.Cmd that performs the
// network call, and Apply* methods consume the resulting message. Screens
// stay thin renderers over this state. Apply* methods are idempotent:
// consuming the same resolution twice leaves the state unchanged, so both
// the root model and the screen that started a fetch may apply it.
package fetch

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/quiz"
)

// WikiMarker is the substring a URL must contain before a preview lookup
// is worth a network call.
const WikiMarker = "wikipedia.org/wiki/"

// Fallback messages for failures whose response carried no detail string.
const (
	historyFailureMsg  = "Could not load quiz history."
	detailFailureMsg   = "Could not load quiz details."
	generateFailureMsg = "Quiz generation failed. Please try again."
)

// Client is the service surface the orchestrator depends on.
type Client interface {
	GenerateQuiz(ctx context.Context, articleURL string) (*quiz.Quiz, error)
	ListQuizzes(ctx context.Context) ([]quiz.Summary, error)
	GetQuiz(ctx context.Context, id int) (*quiz.Quiz, error)
	PreviewURL(ctx context.Context, articleURL string) (*quiz.Preview, error)
}

// Orchestrator tracks per-operation state. History, detail and generation
// share one error slot; preview never writes to it. The detail loading
// flag is deliberately global: while any detail fetch is pending, every
// detail trigger in the UI is disabled.
type Orchestrator struct {
	client Client

	historyLoading bool
	history        []quiz.Summary

	detailLoading bool
	detailToken   int
	selected      *quiz.Quiz

	generating bool
	generated  *quiz.Quiz

	previewSeq     int
	previewLoading bool
	preview        *quiz.Preview

	err string
}

// New creates an Orchestrator backed by the given client.
func New(client Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// StartHistory begins a history fetch: marks it loading, clears the error
// slot, and returns the command that performs the request.
func (o *Orchestrator) StartHistory() tea.Cmd {
	o.historyLoading = true
	o.err = ""
	return func() tea.Msg {
		items, err := o.client.ListQuizzes(context.Background())
		return HistoryResultMsg{Items: items, Err: err}
	}
}

// ApplyHistory consumes a history resolution. On failure the previous list
// is discarded: the history view shows an empty state rather than stale rows.
func (o *Orchestrator) ApplyHistory(msg HistoryResultMsg) {
	o.historyLoading = false
	if msg.Err != nil {
		o.history = nil
		o.err = api.UserMessage(msg.Err, historyFailureMsg)
		return
	}
	// Server order is authoritative; no client-side re-sort.
	o.history = msg.Items
}

// StartDetail begins a detail fetch for the given quiz id. Each call gets a
// monotonically increasing token; only the most recently issued call's
// resolution is applied, so concurrent fetches cannot clobber each other.
func (o *Orchestrator) StartDetail(id int) tea.Cmd {
	o.detailLoading = true
	o.err = ""
	o.detailToken++
	token := o.detailToken
	return func() tea.Msg {
		q, err := o.client.GetQuiz(context.Background(), id)
		return DetailResultMsg{Token: token, Quiz: q, Err: err}
	}
}

// ApplyDetail consumes a detail resolution. Stale resolutions (an earlier
// call finishing after a later one was issued) are dropped entirely and
// false is returned. On failure the previously selected quiz is kept.
func (o *Orchestrator) ApplyDetail(msg DetailResultMsg) bool {
	if msg.Token != o.detailToken {
		return false
	}
	o.detailLoading = false
	if msg.Err != nil {
		o.err = api.UserMessage(msg.Err, detailFailureMsg)
		return true
	}
	o.selected = msg.Quiz
	return true
}

// StartGenerate begins a generation request. A blank (trimmed) URL is a
// validation gap: no call is issued, no state changes, and nil is returned.
// Anything non-empty is submitted as-is; URL shape vetting is the preview
// operation's job, not a submission precondition.
func (o *Orchestrator) StartGenerate(articleURL string) tea.Cmd {
	trimmed := strings.TrimSpace(articleURL)
	if trimmed == "" {
		return nil
	}
	o.generating = true
	o.err = ""
	return func() tea.Msg {
		q, err := o.client.GenerateQuiz(context.Background(), trimmed)
		return GenerateResultMsg{Quiz: q, Err: err}
	}
}

// ApplyGenerate consumes a generation resolution. A fresh quiz does not
// refresh the history list; that happens on the next StartHistory.
func (o *Orchestrator) ApplyGenerate(msg GenerateResultMsg) {
	o.generating = false
	if msg.Err != nil {
		o.err = api.UserMessage(msg.Err, generateFailureMsg)
		return
	}
	o.generated = msg.Quiz
}

// StartPreview begins a preview lookup. URLs without the wiki article path
// marker short-circuit: the current preview is cleared and no call is
// issued. Like detail fetches, previews are fenced by a sequence number so
// a stale lookup cannot overwrite a newer one.
func (o *Orchestrator) StartPreview(articleURL string) tea.Cmd {
	trimmed := strings.TrimSpace(articleURL)
	o.previewSeq++
	if !strings.Contains(trimmed, WikiMarker) {
		o.previewLoading = false
		o.preview = nil
		return nil
	}
	o.previewLoading = true
	seq := o.previewSeq
	return func() tea.Msg {
		p, err := o.client.PreviewURL(context.Background(), trimmed)
		if err != nil {
			// Preview failures are never user-visible.
			p = nil
		}
		return PreviewResultMsg{Seq: seq, Preview: p}
	}
}

// ApplyPreview consumes a preview resolution, dropping stale ones.
func (o *Orchestrator) ApplyPreview(msg PreviewResultMsg) {
	if msg.Seq != o.previewSeq {
		return
	}
	o.previewLoading = false
	o.preview = msg.Preview
}

// History returns the last successfully loaded summaries.
func (o *Orchestrator) History() []quiz.Summary { return o.history }

// HistoryLoading reports whether a history fetch is in flight.
func (o *Orchestrator) HistoryLoading() bool { return o.historyLoading }

// Selected returns the quiz from the most recent successful detail fetch.
func (o *Orchestrator) Selected() *quiz.Quiz { return o.selected }

// DetailPending reports whether any detail fetch is in flight. All detail
// triggers are disabled while it is true.
func (o *Orchestrator) DetailPending() bool { return o.detailLoading }

// Generating reports whether a generation request is in flight.
func (o *Orchestrator) Generating() bool { return o.generating }

// Generated returns the most recently generated quiz.
func (o *Orchestrator) Generated() *quiz.Quiz { return o.generated }

// PreviewPending reports whether a preview lookup is in flight.
func (o *Orchestrator) PreviewPending() bool { return o.previewLoading }

// Preview returns the current preview, or nil when none is available.
func (o *Orchestrator) Preview() *quiz.Preview { return o.preview }

// Err returns the shared error message for history/detail/generate, or ""
// when the last started operation has not failed.
func (o *Orchestrator) Err() string { return o.err }
