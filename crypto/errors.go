package crypto

import "errors"

// Every message is prefixed with "crypto:" so callers can match with errors.Is
// and still see where the failure came from.
var (
	// ErrEmptyKey is returned when a key has no usable characters.
	ErrEmptyKey = errors.New("crypto: key cannot be empty")

	// ErrKeyTooLong is returned by ValidateVigenereKey for keys over MaxKeyLength.
	ErrKeyTooLong = errors.New("crypto: key too long")

	// ErrInvalidKeyCharacter is returned when a Vigenère key character with no
	// shift value has to be applied to a letter.
	ErrInvalidKeyCharacter = errors.New("crypto: invalid key character")

	// ErrInvalidKeyLength is returned when a Hill key's letter count is not a
	// perfect square.
	ErrInvalidKeyLength = errors.New("crypto: key length must be a perfect square")

	// ErrSingularKey is returned when a Hill key matrix has no inverse mod 26.
	ErrSingularKey = errors.New("crypto: key matrix is not invertible mod 26")
)
