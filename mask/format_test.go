package mask

import "testing"

func TestFormat_Fixed(t *testing.T) {
	cases := []struct {
		digits string
		want   string
	}{
		{digits: "", want: "("},
		{digits: "1", want: "(1"},
		{digits: "123", want: "(123"},
		{digits: "1234", want: "(123) 4"},
		{digits: "1234567", want: "(123) 456-7"},
		{digits: "1234567890", want: "(123) 456-7890"},
		{digits: "123456789012", want: "(123) 456-7890"},
		{digits: "12a3-", want: "(123"},
		{digits: "１２３", want: "(123"},
	}
	for _, tc := range cases {
		if got := Format(tc.digits, usDesc, false); got != tc.want {
			t.Fatalf("Format(%q)=%q, want %q", tc.digits, got, tc.want)
		}
	}
}

func TestFormat_Dynamic(t *testing.T) {
	cases := []struct {
		digits string
		want   string
	}{
		{digits: "", want: ""},
		{digits: "123", want: "123"},
		{digits: "1234", want: "123-4"},
		{digits: "1234567", want: "123-4567"},
		{digits: "12345678", want: "1234-5678"},
		{digits: "123456789", want: "1234-5678"},
	}
	for _, tc := range cases {
		if got := Format(tc.digits, localDesc, false); got != tc.want {
			t.Fatalf("Format(%q)=%q, want %q", tc.digits, got, tc.want)
		}
	}
}

func TestFormat_TrunkPrefix(t *testing.T) {
	if got, want := Format("9123456789", ruDesc, true), "8(912) 345-67-89"; got != want {
		t.Fatalf("trunk format=%q, want %q", got, want)
	}
	if got, want := Format("", ruDesc, true), "8("; got != want {
		t.Fatalf("empty trunk format=%q, want %q", got, want)
	}
	noTrunk := Descriptor{Country: "IT", Template: Fixed("xxx xxx xxxx"), CallingCode: 39}
	if got, want := Format("312", noTrunk, true), "312"; got != want {
		t.Fatalf("format without trunk prefix=%q, want %q", got, want)
	}
}

func TestFormat_TrailingLiteralsDropped(t *testing.T) {
	d := Descriptor{Country: "US", Template: Fixed("[xx]")}
	if got, want := Format("12", d, false), "[12"; got != want {
		t.Fatalf("format=%q, want %q", got, want)
	}
	if got, want := Format("", d, false), "["; got != want {
		t.Fatalf("format empty=%q, want %q", got, want)
	}
}
