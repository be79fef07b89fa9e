package textview

import (
	"strings"
	"unicode/utf8"
)

// wrapLines breaks text into lines no wider than width. Paragraphs split at
// '\n'; words break greedily at spaces and overlong words break by rune.
// A non-positive width disables wrapping.
func wrapLines(text string, width float64, m Measurer) []string {
	var lines []string
	for _, p := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, p)
			continue
		}
		lines = append(lines, wrapParagraph(p, width, m)...)
	}
	return lines
}

func wrapParagraph(p string, width float64, m Measurer) []string {
	if p == "" {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, tok := range splitWords(p) {
		if m.Advance(strings.TrimRight(line+tok, " ")) <= width {
			line += tok
			continue
		}
		if line != "" {
			lines = append(lines, strings.TrimRight(line, " "))
			line = ""
		}
		for m.Advance(strings.TrimRight(tok, " ")) > width {
			cut := fitRunes(tok, width, m)
			lines = append(lines, tok[:cut])
			tok = tok[cut:]
		}
		line = tok
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// splitWords splits p into words that keep their trailing spaces.
// Leading spaces stay with the first word.
func splitWords(p string) []string {
	var words []string
	start := 0
	for i := 1; i < len(p); i++ {
		if p[i] != ' ' && p[i-1] == ' ' && strings.TrimLeft(p[start:i], " ") != "" {
			words = append(words, p[start:i])
			start = i
		}
	}
	return append(words, p[start:])
}

// fitRunes returns the byte length of the longest prefix of s that fits in
// width. At least one rune is always taken.
func fitRunes(s string, width float64, m Measurer) int {
	_, size := utf8.DecodeRuneInString(s)
	end := size
	for end < len(s) {
		_, size = utf8.DecodeRuneInString(s[end:])
		if m.Advance(s[:end+size]) > width {
			break
		}
		end += size
	}
	return end
}
