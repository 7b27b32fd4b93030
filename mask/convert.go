package mask

import "github.com/iw2rmb/telmask/internal/grapheme"

// ClampMode controls how offset conversion treats out-of-range input.
type ClampMode uint8

const (
	OffsetError ClampMode = iota
	OffsetClamp
)

// RuneOffset converts a grapheme offset in s to a rune offset.
func RuneOffset(s string, off int, mode ClampMode) (int, bool) {
	runes, _ := grapheme.Boundaries(s)
	off, ok := clampOffset(off, len(runes)-1, mode)
	if !ok {
		return 0, false
	}
	return runes[off], true
}

// ByteOffset converts a grapheme offset in s to a byte offset.
func ByteOffset(s string, off int, mode ClampMode) (int, bool) {
	_, bytes := grapheme.Boundaries(s)
	off, ok := clampOffset(off, len(bytes)-1, mode)
	if !ok {
		return 0, false
	}
	return bytes[off], true
}

// GraphemeOffset converts a rune offset in s, as reported by widgets that
// count runes, to a grapheme offset. A rune offset inside a cluster is
// rejected in both modes.
func GraphemeOffset(s string, runeOff int, mode ClampMode) (int, bool) {
	runes, _ := grapheme.Boundaries(s)
	runeOff, ok := clampOffset(runeOff, runes[len(runes)-1], mode)
	if !ok {
		return 0, false
	}
	for i, r := range runes {
		if r == runeOff {
			return i, true
		}
		if r > runeOff {
			break
		}
	}
	return 0, false
}

func clampOffset(off, max int, mode ClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}
