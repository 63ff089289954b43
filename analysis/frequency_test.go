package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterFrequencies(t *testing.T) {
	counts := LetterFrequencies("Hello, World!")
	assert.Equal(t, 3, counts['L'-'A'])
	assert.Equal(t, 2, counts['O'-'A'])
	assert.Equal(t, 1, counts['H'-'A'])
	assert.Equal(t, 0, counts['Z'-'A'])
}

func TestIndexOfCoincidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"single letter", "A", 0},
		{"no letters", "123 !!", 0},
		{"all same", "AAAA", 1},
		{"all distinct", "ABCD", 0},
		{"two pairs", "AABB", 4.0 / 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IndexOfCoincidence(tt.text), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("aa-bb")
	assert.Equal(t, 4, s.Letters)
	assert.InDelta(t, 4.0/12.0, s.IoC, 1e-9)
}
