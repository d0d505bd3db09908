package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padToWidth(s string, w int) string {
	cur := xansi.StringWidth(s)
	if cur < w {
		return s + strings.Repeat(" ", w-cur)
	}
	return s
}

// renderRows lays out a header row plus data rows in fixed-width columns.
// Cells wider than their column are truncated with an ellipsis.
func renderRows(headers []string, widths []int, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			cell = padToWidth(truncateToWidth(cell, w), w)
			if style != nil {
				cell = style(cell)
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	writeRow(headers, func(s string) string { return styleMuted.Render(s) })
	for _, r := range rows {
		writeRow(r, nil)
	}
	return strings.TrimRight(b.String(), "\n")
}
