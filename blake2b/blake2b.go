// Package blake2b implements the BLAKE2b hash function with digests of 1 to
// 64 bytes and optional keys of up to 64 bytes.
package blake2b

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"
)

const (
	// BlockSize is the compression block length in bytes.
	BlockSize = 128
	// Size is the longest digest length in bytes.
	Size = 64
	// Size256 is the digest length used for address derivation.
	Size256 = 32
)

var (
	ErrInvalidSize = errors.New("blake2b: illegal output length, expected 0 < length <= 64")
	ErrKeyTooLong  = errors.New("blake2b: illegal key, expected length <= 64")
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

type digest struct {
	h      [8]uint64
	t      [2]uint64
	block  [BlockSize]byte
	offset int
	size   int

	key    [BlockSize]byte
	keyLen int
}

// New returns a BLAKE2b hash.Hash producing size bytes. A nil or empty key
// computes the unkeyed hash.
func New(size int, key []byte) (hash.Hash, error) {
	if size < 1 || size > Size {
		return nil, ErrInvalidSize
	}
	if len(key) > Size {
		return nil, ErrKeyTooLong
	}
	d := &digest{size: size, keyLen: len(key)}
	copy(d.key[:], key)
	d.Reset()
	return d, nil
}

// Sum returns the size-byte BLAKE2b digest of input under key.
func Sum(input, key []byte, size int) ([]byte, error) {
	h, err := New(size, key)
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(input)
	return h.Sum(nil), nil
}

// SumHex is Sum rendered as lowercase hex.
func SumHex(input, key []byte, size int) (string, error) {
	sum, err := Sum(input, key, size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Sum256 returns the unkeyed 32-byte digest of data.
func Sum256(data []byte) [Size256]byte {
	d := &digest{size: Size256}
	d.Reset()
	_, _ = d.Write(data)
	var out [Size256]byte
	d.finalize(out[:])
	return out
}

// Sum512 returns the unkeyed 64-byte digest of data.
func Sum512(data []byte) [Size]byte {
	d := &digest{size: Size}
	d.Reset()
	_, _ = d.Write(data)
	var out [Size]byte
	d.finalize(out[:])
	return out
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

// Reset restores the initial state, re-absorbing the key block if any.
func (d *digest) Reset() {
	d.h = iv
	d.h[0] ^= 0x01010000 ^ uint64(d.keyLen)<<8 ^ uint64(d.size)
	d.t = [2]uint64{}
	d.block = [BlockSize]byte{}
	d.offset = 0
	if d.keyLen > 0 {
		// The zero-padded key is a full block, compressed once more
		// input arrives or as the final block.
		copy(d.block[:], d.key[:])
		d.offset = BlockSize
	}
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		// Only compress a full buffer when more input follows, so the last
		// block always gets the final flag.
		if d.offset == BlockSize {
			d.addCounter(BlockSize)
			compress(&d.h, &d.block, d.t, false)
			d.offset = 0
		}
		c := copy(d.block[d.offset:], p)
		d.offset += c
		p = p[c:]
	}
	return n, nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	out := make([]byte, d0.size)
	d0.finalize(out)
	return append(in, out...)
}

func (d *digest) addCounter(n int) {
	d.t[0] += uint64(n)
	if d.t[0] < uint64(n) {
		d.t[1]++
	}
}

func (d *digest) finalize(out []byte) {
	d.addCounter(d.offset)
	for i := d.offset; i < BlockSize; i++ {
		d.block[i] = 0
	}
	compress(&d.h, &d.block, d.t, true)

	var lanes [Size]byte
	for i, v := range d.h {
		binary.LittleEndian.PutUint64(lanes[8*i:], v)
	}
	copy(out, lanes[:d.size])
}
