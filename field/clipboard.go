package field

// Clipboard backs copy, cut and paste.
//
// Copy and cut write the selected display text as shown. Pasted text goes
// through mask.Edit, so formatted and "+<code>" numbers both work. Errors are
// ignored and never reach the UI.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
