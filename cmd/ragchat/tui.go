package main

import (
	"ragchat/cmd/ragchat/chat"
	"ragchat/cmd/ragchat/config"
	"ragchat/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// runInteractiveChat starts the interactive chat interface
func runInteractiveChat() error {
	settings := config.Resolve(endpoint)
	client := api.New(settings.Endpoint)

	p := tea.NewProgram(
		chat.InitChat(chat.Config{
			Endpoint: settings.Endpoint,
			Asker:    client,
		}),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
