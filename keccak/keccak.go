// Package keccak implements the pre-standard Keccak sponge (pad10*1 with the
// 0x01 domain byte, not the FIPS 202 SHA-3 padding) for 224, 256, 384 and
// 512-bit digests.
package keccak

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnsupportedWidth is returned by New for a digest width other than
// 224, 256, 384 or 512 bits.
var ErrUnsupportedWidth = errors.New("keccak: unsupported digest width")

const maxRate = (1600 - 2*224) / 8

// Hash is a Keccak sponge for one digest width. It implements hash.Hash;
// Sum finalizes a copy, so a Hash keeps absorbing after Sum.
type Hash struct {
	a    [25]uint64
	buf  [maxRate]byte
	n    int
	rate int
	size int
}

// New returns a sponge producing bits/8 bytes of output.
func New(bits int) (*Hash, error) {
	switch bits {
	case 224, 256, 384, 512:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, bits)
	}
	return &Hash{
		rate: (1600 - 2*bits) / 8,
		size: bits / 8,
	}, nil
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := &Hash{rate: 136, size: 32}
	_, _ = h.Write(data)
	var out [32]byte
	h.squeeze(out[:])
	return out
}

// Sum512 returns the Keccak-512 digest of data.
func Sum512(data []byte) [64]byte {
	h := &Hash{rate: 72, size: 64}
	_, _ = h.Write(data)
	var out [64]byte
	h.squeeze(out[:])
	return out
}

// Digest returns the digest of message at h's width. It does not use or
// change the data already written to h.
func (h *Hash) Digest(message []byte) []byte {
	d := &Hash{rate: h.rate, size: h.size}
	_, _ = d.Write(message)
	out := make([]byte, d.size)
	d.squeeze(out)
	return out
}

// DigestString is Digest over the UTF-8 bytes of s, so a string and its
// byte form hash identically.
func (h *Hash) DigestString(s string) []byte {
	return h.Digest([]byte(s))
}

func (h *Hash) Size() int { return h.size }

// BlockSize returns the rate in bytes.
func (h *Hash) BlockSize() int { return h.rate }

func (h *Hash) Reset() {
	h.a = [25]uint64{}
	h.n = 0
}

func (h *Hash) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		c := copy(h.buf[h.n:h.rate], p)
		h.n += c
		p = p[c:]
		if h.n == h.rate {
			h.absorb()
		}
	}
	return written, nil
}

func (h *Hash) Sum(in []byte) []byte {
	d := *h
	out := make([]byte, d.size)
	d.squeeze(out)
	return append(in, out...)
}

// absorb XORs a full rate block into the state and permutes.
func (h *Hash) absorb() {
	for i := 0; i < h.rate/8; i++ {
		h.a[i] ^= binary.LittleEndian.Uint64(h.buf[8*i:])
	}
	permute(&h.a)
	h.n = 0
}

// squeeze pads the pending input and fills out with output. h must not be
// written to afterwards.
func (h *Hash) squeeze(out []byte) {
	for i := h.n; i < h.rate; i++ {
		h.buf[i] = 0
	}
	h.buf[h.n] ^= 0x01
	h.buf[h.rate-1] ^= 0x80
	h.absorb()

	var lane [8]byte
	for len(out) > 0 {
		for i := 0; i < h.rate/8 && len(out) > 0; i++ {
			binary.LittleEndian.PutUint64(lane[:], h.a[i])
			out = out[copy(out, lane[:]):]
		}
		if len(out) > 0 {
			permute(&h.a)
		}
	}
}
