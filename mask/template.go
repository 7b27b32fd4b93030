package mask

import "github.com/iw2rmb/telmask/internal/grapheme"

// Resolve returns the slot layout d renders digitCount digits against.
//
// A fixed template resolves to the same layout for every count. A dynamic
// template is asked for the template matching digitCount.
func Resolve(d Descriptor, digitCount int) Layout {
	if digitCount < 0 {
		digitCount = 0
	}
	return parseLayout(d.Template.Text(digitCount))
}

// Capacity returns the maximum number of digits d can display.
func Capacity(d Descriptor) int {
	if !d.Template.IsDynamic() {
		return Resolve(d, 0).Capacity()
	}
	best := 0
	for n := 0; n <= MaxDigits; n++ {
		c := min(n, Resolve(d, n).Capacity())
		if c > best {
			best = c
		}
	}
	return best
}

func parseLayout(template string) Layout {
	clusters := grapheme.Split(template)
	l := make(Layout, 0, len(clusters))
	for _, c := range clusters {
		if c == Placeholder {
			l = append(l, Slot{Kind: SlotDigit})
			continue
		}
		l = append(l, Slot{Kind: SlotLiteral, Text: c})
	}
	return l
}

// render writes digits into l. Output stops after the last digit; with no
// digits it is the run of literals ahead of the first slot.
func (l Layout) render(digits string) string {
	out := make([]byte, 0, len(l)+len(digits))
	var pending []byte
	next := 0
	for _, s := range l {
		if s.Kind == SlotLiteral {
			pending = append(pending, s.Text...)
			continue
		}
		if next >= len(digits) {
			break
		}
		out = append(out, pending...)
		pending = pending[:0]
		out = append(out, digits[next])
		next++
	}
	if next == 0 {
		return string(pending)
	}
	return string(out)
}
