// Package field implements arithmetic modulo p = 2^255 - 19.
//
// An Element holds sixteen signed 64-bit limbs in radix 2^16. Add, Subtract
// and Negate work limb-wise without carrying, so an Element may be
// non-canonical between operations: its limbs can be negative or exceed 16
// bits, and the value it denotes can be larger than p. Multiply and Square
// carry their result back into a loose 16-bit form. Bytes is the only
// canonicalization step; Equal and IsNegative go through it, so comparisons
// always act on the unique representative in [0, p).
//
// None of the operations branch on or index memory by the limb values.
package field

import (
	"crypto/subtle"
	"errors"
)

// Element is a value in GF(2^255 - 19). The zero value is zero.
type Element [16]int64

var errInvalidLength = errors.New("field: invalid element encoding length")

var (
	zero = Element{}
	one  = Element{1}
)

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = zero
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = one
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to the little-endian 32-byte encoding x. The most
// significant bit of x is ignored, and values in [p, 2^255) are accepted
// as their residue.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errInvalidLength
	}
	for i := 0; i < 16; i++ {
		v[i] = int64(x[2*i]) | int64(x[2*i+1])<<8
	}
	v[15] &= 0x7fff
	return v, nil
}

// Bytes returns the canonical little-endian encoding of v.
func (v *Element) Bytes() [32]byte {
	var t, m Element
	t = *v
	t.carry()
	t.carry()
	t.carry()

	// t is now in [0, 2^256) with 16-bit limbs; subtract p twice, keeping
	// the difference only when it did not borrow.
	for j := 0; j < 2; j++ {
		m[0] = t[0] - 0xffed
		for i := 1; i < 15; i++ {
			m[i] = t[i] - 0xffff - ((m[i-1] >> 16) & 1)
			m[i-1] &= 0xffff
		}
		m[15] = t[15] - 0x7fff - ((m[14] >> 16) & 1)
		borrow := (m[15] >> 16) & 1
		m[14] &= 0xffff
		t.Swap(&m, 1-int(borrow))
	}

	var out [32]byte
	for i := 0; i < 16; i++ {
		out[2*i] = byte(t[i])
		out[2*i+1] = byte(t[i] >> 8)
	}
	return out
}

// carry propagates each limb's overflow into the next one, folding the
// carry out of the top limb back into limb 0 multiplied by 38.
func (v *Element) carry() {
	for i := 0; i < 16; i++ {
		v[i] += 1 << 16
		c := v[i] >> 16
		if i < 15 {
			v[i+1] += c - 1
		} else {
			v[0] += 38 * (c - 1)
		}
		v[i] -= c << 16
	}
}

// Add sets v = a + b and returns v. The result is not carried.
func (v *Element) Add(a, b *Element) *Element {
	for i := range v {
		v[i] = a[i] + b[i]
	}
	return v
}

// Subtract sets v = a - b and returns v. The result is not carried.
func (v *Element) Subtract(a, b *Element) *Element {
	for i := range v {
		v[i] = a[i] - b[i]
	}
	return v
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(&zero, a)
}

// Multiply sets v = a * b and returns v.
func (v *Element) Multiply(a, b *Element) *Element {
	var t [31]int64
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			t[i+j] += a[i] * b[j]
		}
	}
	// 2^256 = 38 mod p, so limb i+16 folds into limb i.
	for i := 0; i < 15; i++ {
		t[i] += 38 * t[i+16]
	}
	copy(v[:], t[:16])
	v.carry()
	v.carry()
	return v
}

// Square sets v = a * a and returns v.
func (v *Element) Square(a *Element) *Element {
	return v.Multiply(a, a)
}

// Invert sets v = 1/z mod p and returns v, computed as z^(p-2).
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// p-2 = 2^255 - 21: every bit from 253 down is set except bits 2 and 4.
	c := *z
	for a := 253; a >= 0; a-- {
		c.Square(&c)
		if a != 2 && a != 4 {
			c.Multiply(&c, z)
		}
	}
	*v = c
	return v
}

// Pow22523 sets v = z^((p-5)/8) and returns v.
func (v *Element) Pow22523(z *Element) *Element {
	// (p-5)/8 = 2^252 - 3: bits 250 down to 0, except bit 1.
	c := *z
	for a := 250; a >= 0; a-- {
		c.Square(&c)
		if a != 1 {
			c.Multiply(&c, z)
		}
	}
	*v = c
	return v
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	mask := -int64(cond)
	for i := range v {
		v[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
	return v
}

// Swap swaps v and u if cond == 1, and leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	mask := -int64(cond)
	for i := range v {
		t := mask & (v[i] ^ u[i])
		v[i] ^= t
		u[i] ^= t
	}
}

// Equal returns 1 if v and u denote the same residue, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	a, b := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:])
}

// IsNegative returns 1 if v is odd once canonicalized, and 0 otherwise.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}
