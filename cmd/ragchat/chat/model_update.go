package chat

import (
	"fmt"

	"ragchat/internal/transcript"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd  tea.Cmd
		errCmd tea.Cmd
		spCmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// If the error panel is focused, capture scroll keys first.
		if m.focusError && m.store.LastError() != "" && m.showError && !msg.Alt {
			switch msg.Type {
			case tea.KeyEsc:
				m.focusError = false
				return m, nil
			case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
				m.errorVP, errCmd = m.errorVP.Update(msg)
				return m, errCmd
			default:
				// Swallow other keys while focused to avoid editing input accidentally.
				return m, nil
			}
		}

		// Global keybindings
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			// Alt+Enter inserts a newline
			if msg.Alt {
				break
			}
			// Bracketed paste: don't submit on Enter during paste
			if msg.Paste {
				break
			}
			// Enter sends the message if not loading
			if !m.store.Loading() {
				return m.handleSubmit()
			}
			return m, nil

		case tea.KeyUp:
			// History previous (if at top line)
			if m.textarea.Line() == 0 {
				if m.historyIndex > 0 {
					m.historyIndex--
					m.textarea.SetValue(m.inputHistory[m.historyIndex])
					m.textarea.CursorEnd()
					m.store.SetDraft(m.textarea.Value())
				}
				return m, nil
			}

		case tea.KeyDown:
			// History next (if at bottom line)
			if m.textarea.Line() == m.textarea.LineCount()-1 {
				if m.historyIndex < len(m.inputHistory) {
					m.historyIndex++
					if m.historyIndex == len(m.inputHistory) {
						m.textarea.SetValue("")
					} else {
						m.textarea.SetValue(m.inputHistory[m.historyIndex])
						m.textarea.CursorEnd()
					}
					m.store.SetDraft(m.textarea.Value())
				}
				return m, nil
			}
		}

		// Error panel controls
		// - Alt+E: toggle focus (enables scrolling)
		// - Alt+Shift+E: toggle visibility
		if msg.Alt && len(msg.Runes) > 0 && (msg.Runes[0] == 'e' || msg.Runes[0] == 'E') {
			if m.store.LastError() != "" {
				if msg.Runes[0] == 'E' {
					m.showError = !m.showError
					if !m.showError {
						m.focusError = false
					}
					return m, func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
				}

				if m.showError {
					m.focusError = !m.focusError
				} else {
					m.showError = true
					m.focusError = true
					return m, func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
				}
			}
			return m, nil
		}

		// Handle regular key input
		if !m.store.Loading() {
			m.textarea, tiCmd = m.textarea.Update(msg)
			m.store.SetDraft(m.textarea.Value())
		}

	case windowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 2
		inputHeight := 3
		paddingHeight := 2

		chatWidth := msg.Width - 4
		if chatWidth < 1 {
			chatWidth = 1
		}

		errorPanelHeight := 0
		if m.store.LastError() != "" && m.showError {
			// 1 header line + viewport height + 2 border lines
			errorPanelHeight = 1 + errorPanelViewportHeight + 2
		}

		calcHeight := msg.Height - headerHeight - footerHeight - inputHeight - paddingHeight - errorPanelHeight
		if calcHeight < 1 {
			calcHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(chatWidth, calcHeight)
			m.ready = true
		} else {
			m.viewport.Width = chatWidth
			m.viewport.Height = calcHeight
		}

		// Error viewport lives inside a bordered box within the content area.
		m.errorVP.Width = chatWidth - 4
		if m.errorVP.Width < 1 {
			m.errorVP.Width = 1
		}
		m.errorVP.Height = errorPanelViewportHeight
		if m.store.LastError() != "" {
			m.refreshErrorViewport()
		}

		// Reduce input width to accommodate border (2) + padding (2)
		m.textarea.SetWidth(chatWidth - 4)

		// Update renderer word wrap and re-render with the new width
		if m.renderer != nil {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(chatWidth-4),
			)
		}
		m.refreshViewport()

	case tea.WindowSizeMsg:
		// Convert to our alias and re-process
		return m.Update(windowSizeMsg(msg))

	case spinner.TickMsg:
		if m.store.Loading() {
			m.spinner, spCmd = m.spinner.Update(msg)
			// The thinking placeholder animates inside the transcript
			m.refreshViewport()
			return m, spCmd
		}

	case replyMsg:
		m.store.SetLoading(false)
		m.store.Append(transcript.RoleBot, string(msg))
		m.refreshViewport()

	case askErrMsg:
		m.store.SetLoading(false)
		detail := msg.err.Error()
		m.store.SetError(detail)
		m.store.Append(transcript.RoleBot, fmt.Sprintf("⚠️ Error: %s", detail))
		m.showError = true
		m.focusError = false
		m.refreshErrorViewport()
		m.errorVP.GotoTop()
		m.refreshViewport()
		// Recompute layout to make room for the error panel
		return m, func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
	}

	return m, tea.Batch(tiCmd, spCmd)
}
