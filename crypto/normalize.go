// Package crypto contains the Vigenère, Playfair and Hill ciphers
package crypto

import (
	"strings"
	"unicode"
)

const (
	alphabetSize = 26
	// Filler pads odd Playfair digraphs and short Hill blocks.
	Filler = 'X'
)

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func letterValue(r rune) int {
	return int(r - 'A')
}

func letterOf(v int) byte {
	return byte('A' + v)
}

// NormalizeKeepLayout uppercases every rune and keeps all of them in place.
// Invalid UTF-8 bytes come back as U+FFFD, so the rune count is kept but the
// byte length may grow.
func NormalizeKeepLayout(text string) string {
	return strings.Map(unicode.ToUpper, text)
}

// NormalizeFiltered uppercases text and drops every rune outside A-Z.
func NormalizeFiltered(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		r = unicode.ToUpper(r)
		if isLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
