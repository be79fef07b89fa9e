package textview

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Unlimited is the default maximum text length.
const Unlimited = -1

// lengthOf counts s in the units the length limit is expressed in: runes of
// the NFC form, with non-ASCII runes optionally counting twice.
func lengthOf(s string, nonASCIIAsTwo bool) int {
	s = norm.NFC.String(s)
	if !nonASCIIAsTwo {
		return utf8.RuneCountInString(s)
	}
	n := 0
	for _, r := range s {
		if r < utf8.RuneSelf {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// truncate returns the longest prefix of s whose length is at most limit.
// Cuts happen only at normalization boundaries, so a base character is never
// separated from its combining marks.
func truncate(s string, limit int, nonASCIIAsTwo bool) string {
	if limit <= 0 {
		return ""
	}
	used, end := 0, 0
	for end < len(s) {
		next := end + norm.NFC.NextBoundaryInString(s[end:], true)
		n := lengthOf(s[end:next], nonASCIIAsTwo)
		if used+n > limit {
			break
		}
		used += n
		end = next
	}
	return s[:end]
}
