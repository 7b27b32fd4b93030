package mask

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/iw2rmb/telmask/internal/grapheme"
)

// Parse extracts the national digit sequence from input.
//
// Input may be a formatted display, a partially formatted one or raw
// keystrokes: every cluster that is not a digit is dropped. With
// hasTrunkPrefix the leading national prefix is removed. The result is
// truncated to Capacity(d). Use ParseInternational for the "+<calling code>"
// value to store or send.
func Parse(input string, d Descriptor, hasTrunkPrefix bool) string {
	digits, _ := Positions(input, d, hasTrunkPrefix)
	return digits
}

// ParseInternational is Parse followed by E164.
func ParseInternational(input string, d Descriptor, hasTrunkPrefix bool) string {
	return E164(Parse(input, d, hasTrunkPrefix), d)
}

// Positions parses display like Parse and also returns the offset of the
// cluster each returned digit was read from.
func Positions(display string, d Descriptor, hasTrunkPrefix bool) (digits string, offsets []int) {
	var sb strings.Builder
	for i, c := range grapheme.Split(display) {
		b, ok := digitOf(c)
		if !ok {
			continue
		}
		sb.WriteByte(b)
		offsets = append(offsets, i)
	}
	digits = sb.String()

	if hasTrunkPrefix {
		if t := d.trunkDigits(); t != "" && strings.HasPrefix(digits, t) {
			digits = digits[len(t):]
			offsets = offsets[len(t):]
		}
	}
	if c := Capacity(d); len(digits) > c {
		digits = digits[:c]
		offsets = offsets[:c]
	}
	return digits, offsets
}

// digitOf maps a grapheme cluster to an ASCII digit. Non-ASCII decimal
// digits (full-width, Arabic-Indic, ...) are normalized by libphonenumber.
func digitOf(cluster string) (byte, bool) {
	if len(cluster) == 1 {
		c := cluster[0]
		return c, c >= '0' && c <= '9'
	}
	n := phonenumbers.NormalizeDigitsOnly(cluster)
	if len(n) != 1 {
		return 0, false
	}
	return n[0], true
}

func isDigit(cluster string) bool {
	_, ok := digitOf(cluster)
	return ok
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, c := range grapheme.Split(s) {
		if b, ok := digitOf(c); ok {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
