// Package chat provides the interactive TUI chat interface for ragchat.
package chat

import (
	"context"
	"strings"

	"ragchat/cmd/ragchat/ui"
	"ragchat/internal/transcript"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
)

// InitChat creates the chat model. The terminal dimensions arrive with the
// first WindowSizeMsg; until then the model is not ready.
func InitChat(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything... (Enter to send, Alt+Enter for newline, Esc to quit)"
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	styles := ui.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Bold.Foreground(styles.Theme.Accent)

	vp := viewport.New(80, 20)
	errVP := viewport.New(80, errorPanelViewportHeight)

	// Rebuilt with the real word-wrap width on the first resize.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{
		textarea:  ta,
		viewport:  vp,
		errorVP:   errVP,
		spinner:   sp,
		styles:    styles,
		renderer:  renderer,
		store:     transcript.New(),
		asker:     cfg.Asker,
		endpoint:  cfg.Endpoint,
		sessionID: uuid.NewString(),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// handleSubmit processes the draft when the user presses Enter.
// Empty input and submit-while-loading are silent no-ops; trimming is
// only for the emptiness check, the submitted message keeps the draft
// exactly as typed.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	// The textarea owns editing; the store's draft is the canonical
	// value read at submit time.
	m.store.SetDraft(m.textarea.Value())
	raw := m.store.Draft()
	if strings.TrimSpace(raw) == "" || m.store.Loading() {
		return m, nil
	}

	// Add user message to the transcript
	m.store.Append(transcript.RoleUser, raw)

	// Append to input history
	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != raw {
		m.inputHistory = append(m.inputHistory, raw)
	}
	m.historyIndex = len(m.inputHistory)

	// Clear the draft
	m.textarea.Reset()
	m.store.SetDraft("")

	// Start loading
	m.store.ClearError()
	m.store.SetLoading(true)

	m.refreshViewport()

	// Process in background
	return m, tea.Batch(
		m.spinner.Tick,
		m.ask(raw),
	)
}

// ask returns a command that sends the question to the backend.
// One request per submit; the call either resolves or rejects, and the
// resulting message settles the transcript on the next Update.
func (m Model) ask(query string) tea.Cmd {
	asker := m.asker
	return func() tea.Msg {
		reply, err := asker.Ask(context.Background(), query)
		if err != nil {
			return askErrMsg{err: err}
		}
		return replyMsg(reply)
	}
}

// refreshViewport re-renders the transcript and keeps the newest entry
// visible.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// refreshErrorViewport re-renders the error panel content.
func (m *Model) refreshErrorViewport() {
	m.errorVP.SetContent(m.styles.Body.Render(m.store.LastError()))
}

// Store exposes the transcript state for the CLI layer and tests.
func (m Model) Store() *transcript.Store {
	return m.store
}
