// Package chat test utilities: mocks, fixtures, and the test model builder.
package chat

import (
	"context"
	"sync"

	"ragchat/cmd/ragchat/ui"
	"ragchat/internal/transcript"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MOCK ASKER
// =============================================================================

// mockAsker is a scriptable Asker that records every question it receives.
type mockAsker struct {
	mu    sync.Mutex
	calls []string
	reply string
	err   error
}

func (a *mockAsker) Ask(_ context.Context, query string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, query)
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

func (a *mockAsker) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

func (a *mockAsker) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.calls))
	copy(out, a.calls)
	return out
}

// =============================================================================
// TEST MODEL BUILDER
// =============================================================================

// TestModelOption configures a test model.
type TestModelOption func(*Model)

// NewTestModel creates a minimal Model suitable for testing.
func NewTestModel(opts ...TestModelOption) Model {
	ta := textarea.New()
	ta.Placeholder = "Test input..."
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	errVP := viewport.New(80, errorPanelViewportHeight)

	m := Model{
		textarea:  ta,
		viewport:  vp,
		errorVP:   errVP,
		spinner:   sp,
		styles:    ui.DefaultStyles(),
		store:     transcript.New(),
		asker:     &mockAsker{reply: "ok"},
		endpoint:  "http://127.0.0.1:8000",
		sessionID: "test-session",
		ready:     true,
		width:     100,
		height:    50,
	}

	// Glamour may fail in a bare test environment; nil renderer falls back
	// to plain text.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	m.renderer = renderer

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithAsker sets the backend mock.
func WithAsker(a Asker) TestModelOption {
	return func(m *Model) {
		m.asker = a
	}
}

// WithDraft pre-fills the input control.
func WithDraft(text string) TestModelOption {
	return func(m *Model) {
		m.textarea.SetValue(text)
		m.store.SetDraft(text)
	}
}

// WithLoading sets the in-flight flag.
func WithLoading(loading bool) TestModelOption {
	return func(m *Model) {
		m.store.SetLoading(loading)
	}
}

// WithSize sets the terminal dimensions.
func WithSize(width, height int) TestModelOption {
	return func(m *Model) {
		m.width = width
		m.height = height
		m.viewport = viewport.New(width, height-10)
		m.textarea.SetWidth(width - 4)
	}
}
