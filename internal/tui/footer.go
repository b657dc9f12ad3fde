package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutEntry pairs a trigger key with its display label for the footer.
type ShortcutEntry struct {
	Key   string
	Label string
}

// RenderFooterBar renders the footer shortcut bar. Entries with an empty
// key render dim without a key prefix.
func RenderFooterBar(shortcuts []ShortcutEntry) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		label := sc.Label
		if sc.Key != "" {
			label = sc.Key + " " + sc.Label
		}
		parts[i] = dimStyle.Render(label)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}
