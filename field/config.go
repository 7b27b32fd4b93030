package field

import "github.com/iw2rmb/telmask/mask"

// Config configures the field Model.
type Config struct {
	Descriptor mask.Descriptor

	// Value is the initial national digit sequence.
	Value string

	// TrunkPrefix shows the national prefix in front of the number.
	TrunkPrefix bool

	KeyMap      KeyMap
	Style       Style
	Placeholder string

	// Width pads the rendered field to this many cells. Zero disables padding.
	Width int

	ReadOnly bool

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after every edit that changes the display or digits.
	OnChange func(ChangeEvent)

	// OnBlur receives the number in international form ("+79123456789")
	// when the field loses focus.
	OnBlur func(international string)
}
