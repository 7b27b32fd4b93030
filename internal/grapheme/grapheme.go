// Package grapheme segments display strings into user-perceived characters.
//
// Every caret offset in telmask counts grapheme clusters, so a template
// literal such as a combining sequence or an emoji flag occupies one
// caret position.
package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// Boundaries returns the rune and byte offsets of every cluster boundary in
// text, including the final one. Both slices have Count(text)+1 entries.
func Boundaries(text string) (runes, bytes []int) {
	runes = []int{0}
	bytes = []int{0}
	if text == "" {
		return runes, bytes
	}
	g := uniseg.NewGraphemes(text)
	r, b := 0, 0
	for g.Next() {
		s := g.Str()
		r += utf8.RuneCountInString(s)
		b += len(s)
		runes = append(runes, r)
		bytes = append(bytes, b)
	}
	return runes, bytes
}
