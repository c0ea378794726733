// View rendering for the chat TUI: transcript, header, footer, error panel.
package chat

import (
	"fmt"
	"strings"
	"time"

	"ragchat/cmd/ragchat/ui"
	"ragchat/internal/transcript"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.store.Messages() {
		switch msg.Role {
		case transcript.RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("🧑 You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Content))
			sb.WriteString("\n\n")

		default: // bot
			sb.WriteString(m.styles.BotLabel.Render("🤖 Bot") + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.Content))
			sb.WriteString("\n")
		}
	}

	// Fixed thinking placeholder while a question is in flight; the
	// settled reply replaces it.
	if m.store.Loading() {
		sb.WriteString(m.styles.BotLabel.Render("🤖 Bot") + "\n")
		sb.WriteString(m.spinner.View() + m.styles.Muted.Render(thinkingText))
		sb.WriteString("\n")
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Header
	header := m.renderHeader()

	// Content area (transcript viewport + optional error panel)
	content := m.viewport.View()
	if m.store.LastError() != "" && m.showError {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderErrorPanel())
	}
	chatView := m.styles.Content.Render(content)

	// Input area
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1)

	inputArea := inputStyle.Render(m.textarea.View())

	// Footer
	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		chatView,
		inputArea,
		footer,
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" RAG Chat ")
	endpoint := m.styles.Muted.Render(fmt.Sprintf(" %s", m.endpoint))

	var status string
	if m.store.Loading() {
		spin := m.spinner.View()
		status = lipgloss.JoinHorizontal(lipgloss.Center, spin, " ", m.styles.Badge.Render(thinkingText))
	} else {
		status = m.styles.Success.Render("Ready")
	}

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		"  ",
		status,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		endpoint,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	hotkeys := "Enter: send | Alt+Enter: newline"
	if m.store.LastError() != "" {
		hotkeys += " | Alt+E: error panel"
	}
	hotkeys += " | Esc: quit"

	session := m.sessionID
	if len(session) > 8 {
		session = session[:8]
	}

	timestamp := time.Now().Format("15:04")
	help := m.styles.Muted.Render(fmt.Sprintf("%s | session %s | %s", hotkeys, session, timestamp))
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(help)
}

func (m Model) renderErrorPanel() string {
	if m.store.LastError() == "" {
		return ""
	}

	border := lipgloss.RoundedBorder()
	if m.focusError {
		border = lipgloss.ThickBorder()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Destructive).
		Render("Error") +
		m.styles.Muted.Render("  Alt+E: scroll  Alt+Shift+E: hide")

	panelStyle := lipgloss.NewStyle().
		Border(border).
		BorderForeground(ui.Destructive).
		Padding(0, 1).
		Width(m.viewport.Width).
		MaxWidth(m.viewport.Width)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.errorVP.View()))
}
