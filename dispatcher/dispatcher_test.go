package dispatcher

import (
	"classical-cipher-backend/crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"vigenere encrypt", Request{"AB1C", "KEY", Vigenere, Encrypt}, "KF1M"},
		{"vigenere decrypt", Request{"KF1M", "key", Vigenere, Decrypt}, "AB1C"},
		{"playfair encrypt", Request{"hide the gold", "playfair example", Playfair, Encrypt}, "BMODZBXDNAGE"},
		{"playfair decrypt", Request{"BMODZBXDNAGE", "playfair example", Playfair, Decrypt}, "HIDETHEGOLDX"},
		{"hill encrypt", Request{"act", "GYBNQKURP", Hill, Encrypt}, "POH"},
		{"hill decrypt with inverse key", Request{"POH", "IFKVIVVMI", Hill, Decrypt}, "ACT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"unknown algorithm", Request{"TEXT", "KEY", Algorithm(9), Encrypt}, ErrUnknownAlgorithm},
		{"zero algorithm", Request{Text: "TEXT", Key: "KEY", Direction: Encrypt}, ErrUnknownAlgorithm},
		{"unknown algorithm and direction", Request{"TEXT", "KEY", Algorithm(9), Direction(0)}, ErrUnknownAlgorithm},
		{"unknown direction", Request{"TEXT", "KEY", Vigenere, Direction(0)}, ErrUnknownDirection},
		{"vigenere empty key", Request{"TEXT", "", Vigenere, Encrypt}, crypto.ErrEmptyKey},
		{"vigenere bad key char", Request{"TEXT", "K3Y", Vigenere, Encrypt}, crypto.ErrInvalidKeyCharacter},
		{"hill empty key", Request{"TEXT", "", Hill, Decrypt}, crypto.ErrEmptyKey},
		{"hill eight letters", Request{"TEXT", "ABCDEFGH", Hill, Encrypt}, crypto.ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.req)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"vigenere":   Vigenere,
		"Vigenère":   Vigenere,
		" PLAYFAIR ": Playfair,
		"hill":       Hill,
		"1":          Vigenere,
		"2":          Playfair,
		"3":          Hill,
	}
	for input, want := range tests {
		got, err := ParseAlgorithm(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "4", "0", "caesar"} {
		_, err := ParseAlgorithm(input)
		require.ErrorIs(t, err, ErrUnknownAlgorithm, input)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Encrypt")
	require.NoError(t, err)
	assert.Equal(t, Encrypt, d)

	d, err = ParseDirection("dec")
	require.NoError(t, err)
	assert.Equal(t, Decrypt, d)

	_, err = ParseDirection("sideways")
	require.ErrorIs(t, err, ErrUnknownDirection)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "playfair", Playfair.String())
	assert.Equal(t, "algorithm(7)", Algorithm(7).String())
	assert.Equal(t, "decrypt", Decrypt.String())
	assert.Len(t, Algorithms(), 3)
}
