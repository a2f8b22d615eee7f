package edwards

import "github.com/athanorlabs/go-wavesauth/field"

// a24 = (486662 - 2) / 4
var a24 = field.Element{0xdb41, 1}

var basepoint = [32]byte{9}

// X25519 returns the u-coordinate of scalar * (u, ...) on the Montgomery
// form of the curve. The scalar is clamped first and bit 255 of u is
// ignored.
func X25519(scalar, u *[32]byte) [32]byte {
	k := clamp(scalar[:])

	var x1 field.Element
	_, _ = x1.SetBytes(u[:])

	var x2, z2, x3, z3, e, f field.Element
	x2.One()
	x3.Set(&x1)
	z3.One()

	for i := 254; i >= 0; i-- {
		b := int(k[i>>3]>>(i&7)) & 1
		x2.Swap(&x3, b)
		z2.Swap(&z3, b)

		e.Add(&x2, &z2)
		x2.Subtract(&x2, &z2)
		z2.Add(&x3, &z3)
		x3.Subtract(&x3, &z3)
		z3.Square(&e)
		f.Square(&x2)
		x2.Multiply(&z2, &x2)
		z2.Multiply(&x3, &e)
		e.Add(&x2, &z2)
		x2.Subtract(&x2, &z2)
		x3.Square(&x2)
		z2.Subtract(&z3, &f)
		x2.Multiply(&z2, &a24)
		x2.Add(&x2, &z3)
		z2.Multiply(&z2, &x2)
		x2.Multiply(&z3, &f)
		z3.Multiply(&x3, &x1)
		x3.Square(&e)

		x2.Swap(&x3, b)
		z2.Swap(&z3, b)
	}

	z2.Invert(&z2)
	x2.Multiply(&x2, &z2)
	return x2.Bytes()
}

// X25519Base returns X25519(scalar, 9).
func X25519Base(scalar *[32]byte) [32]byte {
	return X25519(scalar, &basepoint)
}

// edwardsY maps a Montgomery u-coordinate to the Edwards y-coordinate
// y = (u - 1) / (u + 1).
func edwardsY(u *[32]byte) [32]byte {
	var x, num, den, one field.Element
	one.One()
	_, _ = x.SetBytes(u[:])
	den.Add(&x, &one)
	num.Subtract(&x, &one)
	den.Invert(&den)
	num.Multiply(&num, &den)
	return num.Bytes()
}
