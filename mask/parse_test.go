package mask

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		d     Descriptor
		trunk bool
		want  string
	}{
		{name: "formatted", input: "(123) 456-7890", d: usDesc, want: "1234567890"},
		{name: "partial", input: "(123) 45", d: usDesc, want: "12345"},
		{name: "raw keystrokes", input: "(12a3)) 4--5", d: usDesc, want: "12345"},
		{name: "overflow truncated", input: "(123) 456-78901234", d: usDesc, want: "1234567890"},
		{name: "full-width digits", input: "（１２３）", d: usDesc, want: "123"},
		{name: "arabic-indic digits", input: "٥٥٥", d: usDesc, want: "555"},
		{name: "empty", input: "", d: usDesc, want: ""},
		{name: "trunk stripped", input: "8(912) 345-67-89", d: ruDesc, trunk: true, want: "9123456789"},
		{name: "trunk stripped once", input: "8(812) 3", d: ruDesc, trunk: true, want: "8123"},
		{name: "trunk missing", input: "(912) 3", d: ruDesc, trunk: true, want: "9123"},
		{name: "trunk only", input: "8(", d: ruDesc, trunk: true, want: ""},
		{name: "dynamic capacity", input: "1234-56789", d: localDesc, want: "12345678"},
	}
	for _, tc := range cases {
		if got := Parse(tc.input, tc.d, tc.trunk); got != tc.want {
			t.Fatalf("%s: Parse(%q)=%q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestParseInternational(t *testing.T) {
	if got, want := ParseInternational("8(912) 345-67-89", ruDesc, true), "+79123456789"; got != want {
		t.Fatalf("international=%q, want %q", got, want)
	}
	if got, want := ParseInternational("(212) 555", usDesc, false), "+1212555"; got != want {
		t.Fatalf("international=%q, want %q", got, want)
	}
	if got := ParseInternational("(", usDesc, false); got != "" {
		t.Fatalf("international of empty=%q, want empty", got)
	}
	if got, want := E164("123", Descriptor{}), "+123"; got != want {
		t.Fatalf("E164 without calling code=%q, want %q", got, want)
	}
}

func TestPositions(t *testing.T) {
	digits, offsets := Positions("(123) 45", usDesc, false)
	if got, want := digits, "12345"; got != want {
		t.Fatalf("digits=%q, want %q", got, want)
	}
	if want := []int{1, 2, 3, 6, 7}; !reflect.DeepEqual(offsets, want) {
		t.Fatalf("offsets=%v, want %v", offsets, want)
	}

	digits, offsets = Positions("8(91", ruDesc, true)
	if got, want := digits, "91"; got != want {
		t.Fatalf("trunk digits=%q, want %q", got, want)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(offsets, want) {
		t.Fatalf("trunk offsets=%v, want %v", offsets, want)
	}
}

func TestPositions_GraphemeOffsets(t *testing.T) {
	d := Descriptor{Country: "RU", Template: Fixed("🇷🇺 xxx")}
	_, offsets := Positions("🇷🇺 123", d, false)
	if want := []int{2, 3, 4}; !reflect.DeepEqual(offsets, want) {
		t.Fatalf("offsets=%v, want %v", offsets, want)
	}
}
