// Package loader reads plain-text inputs from files and uploads
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DefaultLimit caps inputs when the caller has no configured limit.
const DefaultLimit int64 = 1 << 20

var (
	ErrTooLarge   = errors.New("loader: input exceeds size limit")
	ErrNotText    = errors.New("loader: input is not UTF-8 text")
	ErrNotRegular = errors.New("loader: path is not a regular file")
)

// ReadText reads all of r. A limit <= 0 falls back to DefaultLimit.
func ReadText(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", ErrNotText
	}

	return string(data), nil
}

// LoadFile reads the text file at path.
func LoadFile(path string, limit int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadText(f, limit)
}
