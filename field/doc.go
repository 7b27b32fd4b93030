// Package field provides a Bubble Tea phone-number input backed by the mask
// package.
//
// The component owns the display string, caret and selection. Every
// mutating key goes through mask.Edit, so backspace and delete always remove
// a digit and the caret skips over template literals.
package field
