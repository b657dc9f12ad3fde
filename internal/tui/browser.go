package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/libdash/internal/dashboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RowItem wraps a rendered record for the list component.
type RowItem struct {
	Row dashboard.Row
}

// FilterValue returns the string used for filtering in the list.
func (r RowItem) FilterValue() string {
	return strings.Join(r.Row.Cells, " ")
}

// rowDelegate renders one record line with fixed-width columns.
type rowDelegate struct {
	widths []int
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	rowItem, ok := item.(RowItem)
	if !ok {
		return
	}

	var cells []string
	for i, cell := range rowItem.Row.Cells {
		width := 12
		if i < len(d.widths) {
			width = d.widths[i]
		}
		cells = append(cells, padCell(cell, width))
	}
	line := strings.Join(cells, " ")

	action := "u/d"
	if !rowItem.Row.CanMutate {
		action = "N/A"
	}

	if index == m.Index() {
		fmt.Fprint(w, StyleHighlight.Render("› "+line+"  "+action))
		return
	}
	styledAction := StyleMuted.Render(action)
	if rowItem.Row.CanMutate {
		styledAction = StyleAction.Render(action)
	}
	fmt.Fprint(w, "  "+StyleNormal.Render(line)+"  "+styledAction)
}

// padCell pads or truncates to exactly width visible runes.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return "…"
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// columnWidths sizes each column to its widest cell, capped.
func columnWidths(columns []string, rows []dashboard.Row) []int {
	const maxWidth = 32
	widths := make([]int, len(columns))
	for i, h := range columns {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row.Cells {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	for i := range widths {
		if widths[i] > maxWidth {
			widths[i] = maxWidth
		}
	}
	return widths
}

// browserKeyMap defines keyboard shortcuts
type browserKeyMap struct {
	quit    key.Binding
	update  key.Binding
	delete  key.Binding
	view    key.Binding
	refresh key.Binding
	create  key.Binding
}

var browserKeys = browserKeyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "back"),
	),
	create: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	update: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "update"),
	),
	delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	view: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "view text"),
	),
	refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
}

// BrowseAction is what the user asked for when the browser quit.
type BrowseAction string

const (
	BrowseNone    BrowseAction = ""
	BrowseUpdate  BrowseAction = "update"
	BrowseDelete  BrowseAction = "delete"
	BrowseView    BrowseAction = "view"
	BrowseRefresh BrowseAction = "refresh"
	BrowseCreate  BrowseAction = "create"
)

// BrowseResult holds the outcome of a browser session.
type BrowseResult struct {
	Action BrowseAction
	Row    *dashboard.Row
}

type browserModel struct {
	list      list.Model
	canCreate bool
	quitting  bool
	action    BrowseAction
	selected  *dashboard.Row
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, browserKeys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, browserKeys.refresh):
			m.action = BrowseRefresh
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, browserKeys.create):
			if m.canCreate {
				m.action = BrowseCreate
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, browserKeys.update):
			// Mutation keys only fire where the role policy allows.
			if item, ok := m.list.SelectedItem().(RowItem); ok && item.Row.CanMutate {
				m.action = BrowseUpdate
				m.selected = &item.Row
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, browserKeys.delete):
			if item, ok := m.list.SelectedItem().(RowItem); ok && item.Row.CanMutate {
				m.action = BrowseDelete
				m.selected = &item.Row
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, browserKeys.view):
			if item, ok := m.list.SelectedItem().(RowItem); ok && item.Row.Detail != "" {
				m.action = BrowseView
				m.selected = &item.Row
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.list.View())
}

// RunBrowser launches an interactive browser over one entity's rows.
// canCreate controls whether the add key is live for this role.
func RunBrowser(title string, columns []string, rows []dashboard.Row, canCreate bool) (*BrowseResult, error) {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = RowItem{Row: r}
	}

	delegate := rowDelegate{widths: columnWidths(columns, rows)}
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{browserKeys.create, browserKeys.update, browserKeys.delete, browserKeys.view}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{browserKeys.create, browserKeys.update, browserKeys.delete, browserKeys.view, browserKeys.refresh}
	}

	m := browserModel{list: l, canCreate: canCreate}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(browserModel); ok {
		return &BrowseResult{Action: fm.action, Row: fm.selected}, nil
	}
	return &BrowseResult{Action: BrowseNone}, nil
}
