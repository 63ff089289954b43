// Package analysis is made to measure letter statistics of cipher text
package analysis

import (
	"unicode"
)

type Summary struct {
	Letters int     `json:"letters"`
	IoC     float64 `json:"index_of_coincidence"`
}

// LetterFrequencies counts A-Z case-insensitively; everything else is ignored.
func LetterFrequencies(text string) [26]int {
	var counts [26]int
	for _, r := range text {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			counts[r-'A']++
		}
	}
	return counts
}

// IndexOfCoincidence returns the probability that two letters drawn without
// replacement are equal. Polyalphabetic ciphers push it toward the random
// value, monoalphabetic ones keep the language value.
func IndexOfCoincidence(text string) float64 {
	counts := LetterFrequencies(text)

	total := 0
	var pairs float64
	for _, c := range counts {
		total += c
		pairs += float64(c) * float64(c-1)
	}

	if total < 2 {
		return 0.0
	}

	return pairs / (float64(total) * float64(total-1))
}

func Summarize(text string) Summary {
	counts := LetterFrequencies(text)
	letters := 0
	for _, c := range counts {
		letters += c
	}
	return Summary{
		Letters: letters,
		IoC:     IndexOfCoincidence(text),
	}
}
