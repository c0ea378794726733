package chat

import (
	"context"

	"ragchat/cmd/ragchat/ui"
	"ragchat/internal/transcript"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const errorPanelViewportHeight = 4

// thinkingText is shown in the transcript while a question is in flight.
const thinkingText = "Thinking..."

// Asker answers a single question. The api.Client is the production
// implementation; tests substitute their own.
type Asker interface {
	Ask(ctx context.Context, query string) (string, error)
}

// Config holds configuration for initializing the chat interface.
type Config struct {
	// Endpoint is the backend base URL, shown in the header.
	Endpoint string

	// Asker answers submitted questions. Required.
	Asker Asker
}

// Model is the main model for the interactive chat interface
type Model struct {
	// UI Components
	textarea textarea.Model
	viewport viewport.Model
	errorVP  viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	// State
	store  *transcript.Store
	width  int
	height int
	ready  bool

	// Error panel
	showError  bool
	focusError bool

	// Backend
	asker     Asker
	endpoint  string
	sessionID string

	// Input History
	inputHistory []string
	historyIndex int
}

// Messages for tea updates
type (
	// replyMsg carries the assistant's answer text.
	replyMsg string

	// askErrMsg carries a failed submission: transport errors and
	// non-success HTTP responses both land here.
	askErrMsg struct{ err error }

	windowSizeMsg tea.WindowSizeMsg
)
