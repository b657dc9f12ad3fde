package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user backs out of a form.
var ErrCanceled = errors.New("canceled")

// Field declares one form input.
type Field struct {
	Label       string
	Placeholder string
	Value       string // pre-populated for edit forms
	Width       int
	CharLimit   int
}

type formModel struct {
	title    string
	subtitle string
	inputs   []textinput.Model
	labels   []string
	validate func(values []string) error

	focused    int
	confirming bool
	err        error
	canceled   bool
	result     []string
}

func newForm(title, subtitle string, fields []Field, validate func([]string) error) formModel {
	m := formModel{
		title:    title,
		subtitle: subtitle,
		inputs:   make([]textinput.Model, len(fields)),
		labels:   make([]string, len(fields)),
		validate: validate,
	}

	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.SetValue(f.Value)
		in.CharLimit = f.CharLimit
		if in.CharLimit == 0 {
			in.CharLimit = 200
		}
		in.Width = f.Width
		if in.Width == 0 {
			in.Width = 42
		}
		in.Prompt = "│ "
		if i == 0 {
			in.Focus()
		}
		m.inputs[i] = in
		m.labels[i] = f.Label
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) values() []string {
	vals := make([]string, len(m.inputs))
	for i := range m.inputs {
		vals[i] = m.inputs[i].Value()
	}
	return vals
}

func (m formModel) submit() (tea.Model, tea.Cmd) {
	vals := m.values()
	if err := m.validate(vals); err != nil {
		// Validation failures never leave the form; the user corrects
		// the input and resubmits. No network call has happened.
		m.err = err
		m.confirming = false
		return m, nil
	}
	m.result = vals
	return m, tea.Quit
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			if m.confirming {
				return m.submit()
			}
			m.confirming = true
			return m, nil

		case "y", "Y":
			if m.confirming {
				return m.submit()
			}

		case "n", "N":
			if m.confirming {
				m.canceled = true
				return m, tea.Quit
			}

		case "tab", "shift+tab", "up", "down":
			if m.confirming {
				return m, nil
			}

			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focused--
			} else {
				m.focused++
			}
			if m.focused < 0 {
				m.focused = len(m.inputs) - 1
			} else if m.focused >= len(m.inputs) {
				m.focused = 0
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i < len(m.inputs); i++ {
				if i == m.focused {
					cmds[i] = m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m formModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 58
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(StyleHeader.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(StyleHelp.Render(m.subtitle))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	for i, label := range m.labels {
		if i == m.focused && !m.confirming {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(StyleHighlight.Render("  Submit? "))
		b.WriteString(StyleHelp.Render("Y/n"))
	} else {
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "tab/↑↓", Label: "navigate"},
			{Key: "enter", Label: "submit"},
			{Key: "esc", Label: "cancel"},
		}))
	}
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}

// RunForm launches an interactive form and returns the entered values in
// field order. Validation runs before the form closes; the server is never
// contacted for input the client can reject itself.
func RunForm(title, subtitle string, fields []Field, validate func(values []string) error) ([]string, error) {
	m := newForm(title, subtitle, fields, validate)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(formModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled {
		return nil, ErrCanceled
	}
	if fm.result == nil {
		return nil, ErrCanceled
	}
	return fm.result, nil
}
