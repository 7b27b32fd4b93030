package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
type KeyMap struct {
	Left, Right, Home, End                    key.Binding
	ShiftLeft, ShiftRight, ShiftHome, ShiftEnd key.Binding
	SelectAll                                 key.Binding

	Backspace, Delete key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete digit left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete digit right")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Backspace, km.Delete, km.SelectAll, km.Cut, km.Paste}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Home, km.End},
		{km.ShiftLeft, km.ShiftRight, km.ShiftHome, km.ShiftEnd, km.SelectAll},
		{km.Backspace, km.Delete},
		{km.Copy, km.Cut, km.Paste},
	}
}

func isZeroKeyMap(km KeyMap) bool {
	for _, b := range []key.Binding{km.Left, km.Right, km.Backspace, km.Delete} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
