package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/telmask/internal/grapheme"
	"github.com/iw2rmb/telmask/mask"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events insert their text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	end := grapheme.Count(m.display)

	switch {
	case key.Matches(msg, km.Left):
		if r, ok := m.Selection(); ok {
			m.moveTo(r.Start, false)
		} else {
			m.moveTo(m.caret-1, false)
		}
	case key.Matches(msg, km.Right):
		if r, ok := m.Selection(); ok {
			m.moveTo(r.End, false)
		} else {
			m.moveTo(m.caret+1, false)
		}
	case key.Matches(msg, km.Home):
		m.moveTo(0, false)
	case key.Matches(msg, km.End):
		m.moveTo(end, false)

	case key.Matches(msg, km.ShiftLeft):
		m.moveTo(m.caret-1, true)
	case key.Matches(msg, km.ShiftRight):
		m.moveTo(m.caret+1, true)
	case key.Matches(msg, km.ShiftHome):
		m.moveTo(0, true)
	case key.Matches(msg, km.ShiftEnd):
		m.moveTo(end, true)
	case key.Matches(msg, km.SelectAll):
		m.selecting = false
		m.moveTo(0, false)
		m.moveTo(end, true)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.apply(m.display, m.caret, m.editOptions(mask.EditOptions{Backspace: true}))
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.apply(m.display, m.caret, m.editOptions(mask.EditOptions{Delete: true}))
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.typeText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// editOptions attaches the active selection to opt.
func (m Model) editOptions(opt mask.EditOptions) mask.EditOptions {
	if r, ok := m.Selection(); ok {
		opt.Selection = &r
	}
	return opt
}

// typeText splices typed text into the display at the caret and lets Edit
// reformat it. Over a selection the text replaces the selected digits.
func (m *Model) typeText(s string) {
	if _, ok := m.Selection(); ok {
		m.apply(m.display, m.caret, m.editOptions(mask.EditOptions{Insert: s}))
		return
	}
	end := grapheme.Count(m.display)
	spliced := grapheme.Slice(m.display, 0, m.caret) + s + grapheme.Slice(m.display, m.caret, end)
	m.apply(spliced, m.caret+grapheme.Count(s), mask.EditOptions{})
}

func (m *Model) insertText(s string) {
	m.apply(m.display, m.caret, m.editOptions(mask.EditOptions{Insert: s}))
}

func (m Model) selectedText() string {
	r, ok := m.Selection()
	if !ok {
		return ""
	}
	return grapheme.Slice(m.display, r.Start, r.End)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

// cutSelection deletes the selection; copying it is best effort.
func (m *Model) cutSelection() {
	if _, ok := m.Selection(); !ok {
		return
	}
	m.copySelection()
	m.apply(m.display, m.caret, m.editOptions(mask.EditOptions{Delete: true}))
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertText(s)
}
