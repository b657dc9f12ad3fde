package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailModel shows the full, untruncated content of a long text field.
// The content is rendered as plain text only — never interpreted as
// markup — so hostile server data can at worst look ugly.
type detailModel struct {
	title    string
	content  string
	width    int
	quitting bool
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.width - 8
	if width < 20 {
		width = 60
	}
	body := lipgloss.NewStyle().Width(width).Render(m.content)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(StyleNormal.Render(body))
	b.WriteString("\n\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{{Key: "q", Label: "close"}}))

	outer := lipgloss.NewStyle().Padding(1, 2)
	return outer.Render(StyleBorder.Render(b.String()))
}

// RunDetail shows a full-text detail view and blocks until dismissed.
func RunDetail(title, content string) error {
	if content == "" {
		content = "No content available."
	}
	m := detailModel{title: title, content: content}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running detail view: %w", err)
	}
	return nil
}
