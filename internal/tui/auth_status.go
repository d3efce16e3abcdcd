package tui

import (
	"strings"

	"nathanbeddoewebdev/registrar/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ProviderStatus is one row of the auth status view.
type ProviderStatus struct {
	Name   string
	Status string // "authenticated", "not authenticated", or an error message
}

// RenderAuthStatus renders provider statuses inside a card.
func RenderAuthStatus(statuses []ProviderStatus) string {
	if len(statuses) == 0 {
		return styles.MutedText.Render("No providers registered.")
	}

	width := 0
	for _, s := range statuses {
		width = max(width, lipgloss.Width(s.Name))
	}

	lines := []string{styles.Title.Render("Authentication"), ""}
	for _, s := range statuses {
		name := styles.Label.Width(width + 2).Render(s.Name)
		lines = append(lines, name+styles.StatusIndicator(s.Status))
	}
	return styles.Card.Render(strings.Join(lines, "\n"))
}
