package crypto

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxKeyLength bounds keys accepted by ValidateVigenereKey.
const MaxKeyLength = 256

type Vigenere struct {
	key []rune
}

func NewVigenere(key string) (*Vigenere, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Vigenere{
		key: []rune(NormalizeKeepLayout(key)),
	}, nil
}

func (v *Vigenere) Encrypt(plaintext string) (string, error) {
	return v.transform(plaintext, 1)
}

func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	return v.transform(ciphertext, -1)
}

// transform walks the text by rune position. The key index follows the
// absolute position, so non-letters still consume a key character.
func (v *Vigenere) transform(text string, sign int) (string, error) {
	keyLen := len(v.key)
	var sb strings.Builder
	sb.Grow(len(text))

	i := 0
	for _, char := range NormalizeKeepLayout(text) {
		if !isLetter(char) {
			sb.WriteRune(char)
			i++
			continue
		}

		keyChar := v.key[i%keyLen]
		if !isLetter(keyChar) {
			return "", fmt.Errorf("%w: %q at key position %d", ErrInvalidKeyCharacter, keyChar, i%keyLen)
		}
		shift := letterValue(keyChar)

		// Encrypt: (P + K) mod 26, Decrypt: (C - K + 26) mod 26
		sb.WriteByte(letterOf((letterValue(char) + sign*shift + alphabetSize) % alphabetSize))
		i++
	}

	return sb.String(), nil
}

// ValidateVigenereKey validates if the key is suitable for Vigenère
func ValidateVigenereKey(key string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if utf8.RuneCountInString(key) > MaxKeyLength {
		return fmt.Errorf("%w: cannot exceed %d characters", ErrKeyTooLong, MaxKeyLength)
	}
	return nil
}
