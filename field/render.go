package field

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/telmask/internal/grapheme"
)

func (m Model) render() string {
	st := m.cfg.Style

	if !m.focused && m.cfg.Placeholder != "" && m.Value() == "" {
		return m.pad(st.Placeholder.Render(m.cfg.Placeholder), runewidth.StringWidth(m.cfg.Placeholder))
	}

	sel, hasSel := m.Selection()
	var sb strings.Builder
	width := 0
	for i, g := range grapheme.Split(m.display) {
		width += runewidth.StringWidth(g)
		switch {
		case m.focused && i == m.caret:
			sb.WriteString(st.Cursor.Render(g))
		case hasSel && i >= sel.Start && i < sel.End:
			sb.WriteString(st.Selection.Render(g))
		default:
			sb.WriteString(st.Text.Render(g))
		}
	}
	// Caret past the last cluster.
	if m.focused && m.caret >= grapheme.Count(m.display) {
		sb.WriteString(st.Cursor.Render(" "))
		width++
	}
	return m.pad(sb.String(), width)
}

// pad fills the rendered field up to cfg.Width cells.
func (m Model) pad(s string, width int) string {
	if m.cfg.Width <= width {
		return s
	}
	return s + m.cfg.Style.Text.Render(strings.Repeat(" ", m.cfg.Width-width))
}
