// Package dispatcher routes a cipher request to the matching engine
package dispatcher

import (
	"classical-cipher-backend/crypto"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("dispatcher: unknown algorithm")
	ErrUnknownDirection = errors.New("dispatcher: unknown direction")
)

// Algorithm codes are stable; forms and the CLI accept them as numbers.
type Algorithm int

const (
	Vigenere Algorithm = iota + 1
	Playfair
	Hill
)

var algorithmNames = map[Algorithm]string{
	Vigenere: "vigenere",
	Playfair: "playfair",
	Hill:     "hill",
}

// Algorithms lists every supported algorithm in code order.
func Algorithms() []Algorithm {
	return []Algorithm{Vigenere, Playfair, Hill}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts a name in any case or the numeric code.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, err := strconv.Atoi(s); err == nil {
		a := Algorithm(code)
		if _, ok := algorithmNames[a]; ok {
			return a, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, code)
	}

	switch s {
	case "vigenere", "vigenère":
		return Vigenere, nil
	case "playfair":
		return Playfair, nil
	case "hill":
		return Hill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

type Direction int

const (
	Encrypt Direction = iota + 1
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Request carries one call's inputs. It is passed by value and owned by the
// caller.
type Request struct {
	Text      string
	Key       string
	Algorithm Algorithm
	Direction Direction
}

// Run applies the requested cipher. On error the returned text is empty.
func Run(req Request) (string, error) {
	if _, ok := algorithmNames[req.Algorithm]; !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Algorithm))
	}
	if req.Direction != Encrypt && req.Direction != Decrypt {
		return "", fmt.Errorf("%w: %d", ErrUnknownDirection, int(req.Direction))
	}
	encrypt := req.Direction == Encrypt

	switch req.Algorithm {
	case Vigenere:
		v, err := crypto.NewVigenere(req.Key)
		if err != nil {
			return "", fmt.Errorf("vigenere: %w", err)
		}
		var out string
		if encrypt {
			out, err = v.Encrypt(req.Text)
		} else {
			out, err = v.Decrypt(req.Text)
		}
		if err != nil {
			return "", fmt.Errorf("vigenere: %w", err)
		}
		return out, nil

	case Playfair:
		p := crypto.NewPlayfair(req.Key)
		if encrypt {
			return p.Encrypt(req.Text), nil
		}
		return p.Decrypt(req.Text), nil

	case Hill:
		h, err := crypto.NewHill(req.Key)
		if err != nil {
			return "", fmt.Errorf("hill: %w", err)
		}
		if encrypt {
			return h.Encrypt(req.Text), nil
		}
		return h.Decrypt(req.Text), nil
	}

	return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Algorithm))
}
