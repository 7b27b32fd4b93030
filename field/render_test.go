package field

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func bracketStyle() Style {
	wrap := func(open, close string) lipgloss.Style {
		return lipgloss.NewStyle().Transform(func(s string) string { return open + s + close })
	}
	return Style{
		Text:        lipgloss.NewStyle(),
		Cursor:      wrap("[", "]"),
		Selection:   wrap("<", ">"),
		Placeholder: wrap("{", "}"),
	}
}

func TestRender_CursorAtEnd(t *testing.T) {
	m := New(Config{Descriptor: ruDesc, Value: "912", Style: bracketStyle()})

	if got, want := m.View(), "(912[ ]"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestRender_CursorOnCluster(t *testing.T) {
	m := New(Config{Descriptor: ruDesc, Value: "912", Style: bracketStyle()})
	m.caret = 1

	if got, want := m.View(), "([9]12"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestRender_Selection(t *testing.T) {
	m := New(Config{Descriptor: ruDesc, Value: "912", Style: bracketStyle()})
	m.moveTo(1, true)

	if got, want := m.View(), "([9]<1><2>"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestRender_WidthPadding(t *testing.T) {
	m := New(Config{Descriptor: ruDesc, Value: "912", Style: bracketStyle(), Width: 10})

	got := m.View()
	if want := "(912[ ]" + strings.Repeat(" ", 5); got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestRender_PlaceholderWhenBlurredAndEmpty(t *testing.T) {
	m := New(Config{Descriptor: ruDesc, Style: bracketStyle(), Placeholder: "phone"})

	if got, want := m.View(), "([ ]"; got != want {
		t.Fatalf("focused view=%q, want %q", got, want)
	}

	m = m.Blur()
	if got, want := m.View(), "{phone}"; got != want {
		t.Fatalf("blurred view=%q, want %q", got, want)
	}
}

func TestRender_CursorProducesANSIWithColorProfile(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.TrueColor))
	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Reverse(true)}

	m := New(Config{Descriptor: ruDesc, Value: "912", Style: st})
	got := m.View()
	if !strings.HasPrefix(got, "(912") || !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI cursor after text, got %q", got)
	}

	r.SetColorProfile(termenv.Ascii)
	if got, want := m.View(), "(912 "; got != want {
		t.Fatalf("ascii view=%q, want %q", got, want)
	}
}
