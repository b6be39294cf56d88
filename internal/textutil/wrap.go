// Package textutil holds small text helpers for rendering help output.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits s into lines of at most width runes, breaking at whitespace. Runs of whitespace
// collapse to a single space. Words longer than width are split across lines on rune boundaries.
// Wrap returns a single empty line for empty input, so callers can always index the first line.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	n := 0 // runes in line
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		n = 0
	}
	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			if n > 0 {
				flush()
			}
			cut := runeOffset(word, width)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		if word == "" {
			continue
		}
		size := utf8.RuneCountInString(word)
		switch {
		case n == 0:
		case n+1+size <= width:
			line.WriteString(" ")
			n++
		default:
			flush()
		}
		line.WriteString(word)
		n += size
	}
	if n > 0 {
		flush()
	}
	return lines
}

// runeOffset returns the byte offset of the n-th rune in s.
func runeOffset(s string, n int) int {
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
