package wavesauth

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// AuthPrefix opens every wallet authentication message.
const AuthPrefix = "WavesWalletAuthentication"

var (
	ErrComponentTooLong = errors.New("message component longer than 65535 bytes")
	ErrNotAuthMessage   = errors.New("not a wallet authentication message")

	errInputBytesTooShort = errors.New("input bytes too short")
	errTrailingBytes      = errors.New("trailing bytes after message")
)

// Message returns the bytes the wallet signs for host and data: each of
// AuthPrefix, host and data prefixed with its length as a big-endian uint16.
func Message(host, data string) ([]byte, error) {
	b := make([]byte, 0, 6+len(AuthPrefix)+len(host)+len(data))
	for _, s := range [...]string{AuthPrefix, host, data} {
		if len(s) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %d bytes", ErrComponentTooLong, len(s))
		}
		b = binary.BigEndian.AppendUint16(b, uint16(len(s)))
		b = append(b, s...)
	}
	return b, nil
}

// ParseMessage is the inverse of Message.
func ParseMessage(in []byte) (host, data string, err error) {
	reader := bytes.NewBuffer(in)

	var parts [3]string
	for i := range parts {
		if reader.Len() < 2 {
			return "", "", errInputBytesTooShort
		}
		n := int(binary.BigEndian.Uint16(reader.Next(2)))
		if reader.Len() < n {
			return "", "", errInputBytesTooShort
		}
		parts[i] = string(reader.Next(n))
	}

	if reader.Len() != 0 {
		return "", "", errTrailingBytes
	}
	if parts[0] != AuthPrefix {
		return "", "", ErrNotAuthMessage
	}
	return parts[1], parts[2], nil
}
