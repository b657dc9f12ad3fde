package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

const maxCellWidth = 40

// Row is one rendered record: display cells plus what the action slot and
// detail view need.
type Row struct {
	ID        int64
	Cells     []string
	CanMutate bool
	// Detail is the full long-text content behind the "view" marker,
	// or "" when the record has none. It is always treated as plain
	// text, never interpreted.
	Detail string
}

// actionCell renders the role-conditional action slot.
func actionCell(canMutate bool) string {
	if canMutate {
		return "update delete"
	}
	return "N/A"
}

// RenderTable writes the collection as an aligned table. Rendering is a
// pure function of its input: rendering the same collection twice yields
// identical output with no accumulation.
func RenderTable(w io.Writer, columns []string, rows []Row) {
	headers := append(append([]string{}, columns...), "Actions")

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	cells := make([][]string, len(rows))
	for ri, row := range rows {
		line := append(append([]string{}, row.Cells...), actionCell(row.CanMutate))
		for ci, cell := range line {
			if ci < len(widths) && len([]rune(cell)) > widths[ci] {
				widths[ci] = len([]rune(cell))
			}
		}
		cells[ri] = line
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(padOrTruncate(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, line := range cells {
		for i, cell := range line {
			b.WriteString(padOrTruncate(cell, widths[i]))
			if i < len(line)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	_, _ = fmt.Fprint(w, b.String())
}

// padOrTruncate pads s to exactly width visible chars, truncating with "…"
// if necessary. Rune count, not byte length, so UTF-8 aligns.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	n := len(runes)
	if n > width {
		if width <= 1 {
			return "…"
		}
		return string(runes[:width-1]) + "…"
	}
	if n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
