// Package mask implements the pure phone-number masking engine.
//
// Offsets are 0-based grapheme-cluster indices into a display string.
// Selections are half-open ranges: [Start, End).
//
// Format renders a digit sequence through a country template, Parse recovers
// the digit sequence from any display string, and Edit applies one keystroke
// (typing, paste, backspace, delete, selection replace) to a display string
// and reports where the caret lands. None of them keep state between calls.
package mask
