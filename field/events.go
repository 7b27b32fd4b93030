package field

import "github.com/iw2rmb/telmask/mask"

// ChangeEvent describes the field after an edit that changed it.
type ChangeEvent struct {
	Display string
	Caret   int
	Intent  mask.Intent

	// Digits is the national number; International is its E.164 form.
	Digits        string
	International string
}

func buildChangeEvent(m Model, res mask.Result) ChangeEvent {
	return ChangeEvent{
		Display:       res.Display,
		Caret:         res.Caret,
		Intent:        res.Intent,
		Digits:        res.Digits,
		International: mask.E164(res.Digits, m.cfg.Descriptor),
	}
}
