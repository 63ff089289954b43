package crypto

import "strings"

const (
	squareSize = 5
	// squareAlphabet is A-Z without J, which shares a cell with I.
	squareAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
)

// KeySquare is the 5x5 Playfair grid. It always holds 25 distinct letters
// and never J.
type KeySquare [squareSize][squareSize]byte

// Digraph is a pair of letters enciphered as a unit.
type Digraph [2]byte

func (d Digraph) String() string {
	return string(d[:])
}

func foldJ(text string) string {
	return strings.ReplaceAll(text, "J", "I")
}

// NewKeySquare fills the grid row-major with the key's letters in first
// occurrence order, followed by the rest of the alphabet.
func NewKeySquare(key string) KeySquare {
	var (
		square KeySquare
		used   [alphabetSize]bool
		index  int
	)

	for _, char := range []byte(foldJ(NormalizeFiltered(key)) + squareAlphabet) {
		if used[char-'A'] {
			continue
		}
		used[char-'A'] = true
		square[index/squareSize][index%squareSize] = char
		index++
		if index == squareSize*squareSize {
			break
		}
	}

	return square
}

// Position returns the row and column of letter, folding J into I.
func (s KeySquare) Position(letter byte) (row, col int, ok bool) {
	if letter == 'J' {
		letter = 'I'
	}
	for r := 0; r < squareSize; r++ {
		for c := 0; c < squareSize; c++ {
			if s[r][c] == letter {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

func (s KeySquare) String() string {
	var sb strings.Builder
	for row := range squareSize {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(s[row][:])
	}
	return sb.String()
}

// Digraphs splits filtered text into pairs. A doubled letter is split by the
// filler and the second copy starts the next pair; an unpaired last letter
// is padded with the filler.
func Digraphs(text string) []Digraph {
	digraphs := make([]Digraph, 0, len(text)/2+1)
	for i := 0; i < len(text); {
		switch {
		case i == len(text)-1:
			digraphs = append(digraphs, Digraph{text[i], Filler})
			i++
		case text[i] == text[i+1]:
			digraphs = append(digraphs, Digraph{text[i], Filler})
			i++
		default:
			digraphs = append(digraphs, Digraph{text[i], text[i+1]})
			i += 2
		}
	}
	return digraphs
}

type Playfair struct {
	square KeySquare
}

func NewPlayfair(key string) *Playfair {
	return &Playfair{
		square: NewKeySquare(key),
	}
}

// Square returns a copy of the key square.
func (p *Playfair) Square() KeySquare {
	return p.square
}

func (p *Playfair) Encrypt(plaintext string) string {
	return p.transform(plaintext, 1)
}

// Decrypt mirrors Encrypt on the same square. Fillers inserted during
// encryption stay in the output.
func (p *Playfair) Decrypt(ciphertext string) string {
	return p.transform(ciphertext, squareSize-1)
}

func (p *Playfair) transform(text string, step int) string {
	digraphs := Digraphs(foldJ(NormalizeFiltered(text)))

	out := make([]byte, 0, len(digraphs)*2)
	for _, d := range digraphs {
		// Every letter of folded, filtered text is on the grid.
		rowA, colA, _ := p.square.Position(d[0])
		rowB, colB, _ := p.square.Position(d[1])

		switch {
		case rowA == rowB:
			out = append(out,
				p.square[rowA][(colA+step)%squareSize],
				p.square[rowB][(colB+step)%squareSize])
		case colA == colB:
			out = append(out,
				p.square[(rowA+step)%squareSize][colA],
				p.square[(rowB+step)%squareSize][colB])
		default:
			out = append(out, p.square[rowA][colB], p.square[rowB][colA])
		}
	}

	return string(out)
}
