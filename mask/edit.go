package mask

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/telmask/internal/grapheme"
)

// Edit applies one keystroke to display and reformats it.
//
// caret and opt.Selection are offsets into display. Edits always act on the
// digit sequence: a backspace right after a literal removes the nearest digit
// to its left, a delete before a literal removes the nearest digit to its
// right. The returned caret sits on the slot of the digit that follows the
// edit, or at the end of the display when no digit follows.
//
// Out-of-range offsets are clamped and overflowing input is truncated to
// Capacity(d) before the caret is mapped.
func Edit(display string, caret int, d Descriptor, opt EditOptions) Result {
	if opt.TrunkPrefix && opt.Insert == "" && opt.intent() == IntentInsert {
		display, caret = behindTrunk(display, clampInt(caret, 0, grapheme.Count(display)), d)
	}
	digits, offsets := Positions(display, d, opt.TrunkPrefix)
	size := grapheme.Count(display)
	idx := logicalIndex(offsets, clampInt(caret, 0, size))

	intent := opt.intent()
	switch intent {
	case IntentReplace:
		sel, _ := opt.selection()
		sel = sel.clamp(size)
		lo, hi := logicalIndex(offsets, sel.Start), logicalIndex(offsets, sel.End)
		ins := ""
		if !opt.Backspace && !opt.Delete {
			ins = insertDigits(opt.Insert, d)
		}
		digits = digits[:lo] + ins + digits[hi:]
		idx = lo + len(ins)
	case IntentBackspace:
		if idx > 0 {
			digits = digits[:idx-1] + digits[idx:]
			idx--
		}
	case IntentDelete:
		if idx < len(digits) {
			digits = digits[:idx] + digits[idx+1:]
		}
	default:
		ins := insertDigits(opt.Insert, d)
		digits = digits[:idx] + ins + digits[idx:]
		idx += len(ins)
	}

	if c := Capacity(d); len(digits) > c {
		digits = digits[:c]
	}
	idx = clampInt(idx, 0, len(digits))

	out := Format(digits, d, opt.TrunkPrefix)
	return Result{
		Display: out,
		Caret:   CaretFor(out, idx, d, opt.TrunkPrefix),
		Digits:  digits,
		Intent:  intent,
	}
}

// LogicalIndex maps a display offset to a digit index: the number of digits
// that sit before caret.
func LogicalIndex(display string, caret int, d Descriptor, hasTrunkPrefix bool) int {
	_, offsets := Positions(display, d, hasTrunkPrefix)
	return logicalIndex(offsets, clampInt(caret, 0, grapheme.Count(display)))
}

// CaretFor maps digit index idx back to a display offset: the slot holding
// digit idx, or the end of display when idx is past the last digit.
func CaretFor(display string, idx int, d Descriptor, hasTrunkPrefix bool) int {
	_, offsets := Positions(display, d, hasTrunkPrefix)
	if idx < 0 {
		idx = 0
	}
	if idx < len(offsets) {
		return offsets[idx]
	}
	return grapheme.Count(display)
}

func logicalIndex(offsets []int, caret int) int {
	n := 0
	for _, off := range offsets {
		if off >= caret {
			break
		}
		n++
	}
	return n
}

// insertDigits keeps the digits of typed or pasted text. A paste in
// international form loses its "+<calling code>" prefix.
func insertDigits(text string, d Descriptor) string {
	digits := digitsOnly(text)
	if d.CallingCode <= 0 || !strings.HasPrefix(strings.TrimSpace(text), "+") {
		return digits
	}
	return strings.TrimPrefix(digits, strconv.Itoa(d.CallingCode))
}

// behindTrunk moves text typed in front of the trunk prefix to just after it.
// caret marks the end of the typed text, so the trunk must start there.
func behindTrunk(display string, caret int, d Descriptor) (string, int) {
	n := grapheme.Count(d.TrunkPrefix)
	if n == 0 || strings.HasPrefix(display, d.TrunkPrefix) {
		return display, caret
	}
	size := grapheme.Count(display)
	if caret+n > size || grapheme.Slice(display, caret, caret+n) != d.TrunkPrefix {
		return display, caret
	}
	typed := grapheme.Slice(display, 0, caret)
	return d.TrunkPrefix + typed + grapheme.Slice(display, caret+n, size), caret + n
}
