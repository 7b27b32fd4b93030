package grapheme

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "(" + "e\u0301" + "🇷🇺" + ")"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != "🇷🇺" {
		t.Fatalf("split[2]=%q, want flag", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + "🇷🇺" + "b"
	if got, want := Slice(text, 1, 3), "é🇷🇺"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got, want := Slice(text, -3, 1), "a"; got != want {
		t.Fatalf("slice negative start=%q, want %q", got, want)
	}
}

func TestSplit_ConcatenatesBack(t *testing.T) {
	text := "+7 (912) 345"
	if got := strings.Join(Split(text), ""); got != text {
		t.Fatalf("join(split)=%q, want %q", got, text)
	}
}

func TestBoundaries(t *testing.T) {
	runes, bytes := Boundaries("a" + "e\u0301" + "б")
	if want := []int{0, 1, 3, 4}; !reflect.DeepEqual(runes, want) {
		t.Fatalf("rune boundaries=%v, want %v", runes, want)
	}
	if want := []int{0, 1, 4, 6}; !reflect.DeepEqual(bytes, want) {
		t.Fatalf("byte boundaries=%v, want %v", bytes, want)
	}

	runes, bytes = Boundaries("")
	if len(runes) != 1 || len(bytes) != 1 {
		t.Fatalf("empty boundaries=%v/%v, want single zero", runes, bytes)
	}
}
