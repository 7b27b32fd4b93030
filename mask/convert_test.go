package mask

import "testing"

func TestOffsetConversion_ExportedAndCallable(t *testing.T) {
	var (
		_ func(string, int, ClampMode) (int, bool) = RuneOffset
		_ func(string, int, ClampMode) (int, bool) = ByteOffset
		_ func(string, int, ClampMode) (int, bool) = GraphemeOffset
	)
}

func TestRuneAndByteOffset(t *testing.T) {
	s := "🇷🇺 (91"
	cases := []struct {
		off      int
		mode     ClampMode
		wantRune int
		wantByte int
		wantOK   bool
	}{
		{off: 0, mode: OffsetError, wantRune: 0, wantByte: 0, wantOK: true},
		{off: 1, mode: OffsetError, wantRune: 2, wantByte: 8, wantOK: true},
		{off: 5, mode: OffsetError, wantRune: 6, wantByte: 12, wantOK: true},
		{off: 6, mode: OffsetError, wantOK: false},
		{off: -1, mode: OffsetError, wantOK: false},
		{off: 6, mode: OffsetClamp, wantRune: 6, wantByte: 12, wantOK: true},
		{off: -1, mode: OffsetClamp, wantRune: 0, wantByte: 0, wantOK: true},
	}
	for _, tc := range cases {
		r, ok := RuneOffset(s, tc.off, tc.mode)
		if ok != tc.wantOK || (ok && r != tc.wantRune) {
			t.Fatalf("RuneOffset(%d)=(%d,%v), want (%d,%v)", tc.off, r, ok, tc.wantRune, tc.wantOK)
		}
		b, ok := ByteOffset(s, tc.off, tc.mode)
		if ok != tc.wantOK || (ok && b != tc.wantByte) {
			t.Fatalf("ByteOffset(%d)=(%d,%v), want (%d,%v)", tc.off, b, ok, tc.wantByte, tc.wantOK)
		}
	}
}

func TestGraphemeOffset(t *testing.T) {
	s := "🇷🇺 (91"
	cases := []struct {
		runeOff int
		mode    ClampMode
		want    int
		wantOK  bool
	}{
		{runeOff: 0, mode: OffsetError, want: 0, wantOK: true},
		{runeOff: 1, mode: OffsetError, wantOK: false},
		{runeOff: 2, mode: OffsetError, want: 1, wantOK: true},
		{runeOff: 6, mode: OffsetError, want: 5, wantOK: true},
		{runeOff: 9, mode: OffsetError, wantOK: false},
		{runeOff: 9, mode: OffsetClamp, want: 5, wantOK: true},
		{runeOff: 1, mode: OffsetClamp, wantOK: false},
	}
	for _, tc := range cases {
		got, ok := GraphemeOffset(s, tc.runeOff, tc.mode)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Fatalf("GraphemeOffset(%d)=(%d,%v), want (%d,%v)", tc.runeOff, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestOffsetConversion_UnknownModeRejected(t *testing.T) {
	if _, ok := RuneOffset("abc", 1, ClampMode(9)); ok {
		t.Fatalf("unknown clamp mode should be rejected")
	}
}
