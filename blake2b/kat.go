package blake2b

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Vector is one known-answer test: Hash is the 64-byte digest of In keyed
// with Key.
type Vector struct {
	In   []byte
	Key  []byte
	Hash []byte
}

// Check reports whether the vector's hash matches this implementation.
func (v *Vector) Check() (bool, error) {
	sum, err := Sum(v.In, v.Key, len(v.Hash))
	if err != nil {
		return false, err
	}
	return bytes.Equal(sum, v.Hash), nil
}

// ParseKAT reads the reference known-answer file format: blocks of
// "in:", "key:" and "hash:" lines with hex values, one vector per "hash:".
func ParseKAT(r io.Reader) ([]Vector, error) {
	var (
		vectors []Vector
		cur     Vector
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: missing ':'", lineNo)
		}
		b, err := hex.DecodeString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch strings.TrimSpace(name) {
		case "in":
			cur.In = b
		case "key":
			cur.Key = b
		case "hash":
			cur.Hash = b
			vectors = append(vectors, cur)
			cur = Vector{}
		default:
			return nil, fmt.Errorf("line %d: unknown field %q", lineNo, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}
