package crypto

import (
	"fmt"
	"math"
	"strings"
)

// KeyMatrix is an n x n matrix of letter values filled row-major from a key.
type KeyMatrix [][]int

// NewKeyMatrix builds the matrix from the key's letters. The letter count
// must be a non-zero perfect square.
func NewKeyMatrix(key string) (KeyMatrix, error) {
	letters := NormalizeFiltered(key)
	if len(letters) == 0 {
		return nil, ErrEmptyKey
	}

	size := isqrt(len(letters))
	if size*size != len(letters) {
		return nil, fmt.Errorf("%w: got %d letters", ErrInvalidKeyLength, len(letters))
	}

	matrix := make(KeyMatrix, size)
	for row := range size {
		matrix[row] = make([]int, size)
		for col := range size {
			matrix[row][col] = letterValue(rune(letters[row*size+col]))
		}
	}
	return matrix, nil
}

func isqrt(n int) int {
	root := int(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	for (root+1)*(root+1) <= n {
		root++
	}
	return root
}

// Size returns n for an n x n matrix.
func (m KeyMatrix) Size() int {
	return len(m)
}

// Key renders the matrix back into a key string, row-major.
func (m KeyMatrix) Key() string {
	var sb strings.Builder
	sb.Grow(len(m) * len(m))
	for _, row := range m {
		for _, v := range row {
			sb.WriteByte(letterOf(v))
		}
	}
	return sb.String()
}

// MulVec returns m * vec with every component reduced mod 26.
func (m KeyMatrix) MulVec(vec []int) []int {
	out := make([]int, len(m))
	for row := range m {
		sum := 0
		for col, v := range m[row] {
			sum += v * vec[col]
		}
		out[row] = sum % alphabetSize
	}
	return out
}

type Hill struct {
	matrix KeyMatrix
}

func NewHill(key string) (*Hill, error) {
	matrix, err := NewKeyMatrix(key)
	if err != nil {
		return nil, err
	}
	return &Hill{matrix: matrix}, nil
}

func (h *Hill) Matrix() KeyMatrix {
	return h.matrix
}

func (h *Hill) Encrypt(plaintext string) string {
	return h.transform(plaintext)
}

// Decrypt applies the same multiplication as Encrypt. The key passed to
// NewHill must already be the inverse of the encryption key; see
// HillInverseKey.
func (h *Hill) Decrypt(ciphertext string) string {
	return h.transform(ciphertext)
}

func (h *Hill) transform(text string) string {
	size := h.matrix.Size()
	letters := NormalizeFiltered(text)
	if pad := len(letters) % size; pad != 0 {
		letters += strings.Repeat(string(Filler), size-pad)
	}

	out := make([]byte, 0, len(letters))
	vec := make([]int, size)
	for i := 0; i < len(letters); i += size {
		for j := range size {
			vec[j] = letterValue(rune(letters[i+j]))
		}
		for _, v := range h.matrix.MulVec(vec) {
			out = append(out, letterOf(v))
		}
	}
	return string(out)
}

// HillInverseKey returns the key whose matrix is the inverse of key's matrix
// mod 26. Decrypting with the returned key undoes encryption with key.
func HillInverseKey(key string) (string, error) {
	matrix, err := NewKeyMatrix(key)
	if err != nil {
		return "", err
	}
	inverse, err := matrix.Inverse()
	if err != nil {
		return "", err
	}
	return inverse.Key(), nil
}

// Inverse computes adj(m) * det(m)^-1 mod 26. Cofactors are expanded
// recursively, which is fine for the small matrices keys produce.
func (m KeyMatrix) Inverse() (KeyMatrix, error) {
	size := m.Size()
	det := m.determinant()
	detInv, ok := modInverse(det)
	if !ok {
		return nil, fmt.Errorf("%w: determinant %d", ErrSingularKey, det)
	}

	inverse := make(KeyMatrix, size)
	for row := range size {
		inverse[row] = make([]int, size)
	}
	if size == 1 {
		inverse[0][0] = detInv
		return inverse, nil
	}

	for row := range size {
		for col := range size {
			cofactor := m.minor(row, col).determinant()
			if (row+col)%2 == 1 {
				cofactor = (alphabetSize - cofactor) % alphabetSize
			}
			// adj(m) is the transposed cofactor matrix.
			inverse[col][row] = cofactor * detInv % alphabetSize
		}
	}
	return inverse, nil
}

// determinant returns det(m) mod 26 in [0, 25].
func (m KeyMatrix) determinant() int {
	size := m.Size()
	switch size {
	case 0:
		return 1
	case 1:
		return mod26(m[0][0])
	case 2:
		return mod26(m[0][0]*m[1][1] - m[0][1]*m[1][0])
	}

	det := 0
	for col := range size {
		term := m[0][col] * m.minor(0, col).determinant()
		if col%2 == 1 {
			term = -term
		}
		det += term
	}
	return mod26(det)
}

func (m KeyMatrix) minor(skipRow, skipCol int) KeyMatrix {
	size := m.Size()
	minor := make(KeyMatrix, 0, size-1)
	for row := range size {
		if row == skipRow {
			continue
		}
		r := make([]int, 0, size-1)
		for col := range size {
			if col != skipCol {
				r = append(r, m[row][col])
			}
		}
		minor = append(minor, r)
	}
	return minor
}

func mod26(v int) int {
	v %= alphabetSize
	if v < 0 {
		v += alphabetSize
	}
	return v
}

func modInverse(v int) (int, bool) {
	v = mod26(v)
	for candidate := 1; candidate < alphabetSize; candidate++ {
		if v*candidate%alphabetSize == 1 {
			return candidate, true
		}
	}
	return 0, false
}
