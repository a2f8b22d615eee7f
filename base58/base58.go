// Package base58 renders keys, signatures and addresses with the Bitcoin
// alphabet, which Waves shares.
package base58

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Alphabet excludes 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// CharacterError reports a character outside Alphabet.
type CharacterError struct {
	Char rune
	Pos  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("there is no character %q in the base58 alphabet (position %d)", e.Char, e.Pos)
}

// Encode encodes b. Each leading zero byte becomes a leading '1'.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode is the inverse of Encode.
func Decode(s string) ([]byte, error) {
	for i, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return nil, &CharacterError{Char: c, Pos: i}
		}
	}
	return base58.Decode(s), nil
}
