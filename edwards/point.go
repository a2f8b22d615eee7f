package edwards

import (
	"crypto/subtle"
	"errors"

	"github.com/athanorlabs/go-wavesauth/field"
)

var errNotOnCurve = errors.New("edwards: encoding is not a valid point")

var (
	// d = -121665/121666
	d = field.Element{
		0x78a3, 0x1359, 0x4dca, 0x75eb, 0xd8ab, 0x4141, 0x0a4d, 0x0070,
		0xe898, 0x7779, 0x4079, 0x8cc7, 0xfe73, 0x2b6f, 0x6cee, 0x5203,
	}
	d2 = field.Element{
		0xf159, 0x26b2, 0x9b94, 0xebd6, 0xb156, 0x8283, 0x149a, 0x00e0,
		0xd130, 0xeef3, 0x80f2, 0x198e, 0xfce7, 0x56df, 0xd9dc, 0x2406,
	}
	// sqrtM1 = 2^((p-1)/4), a square root of -1.
	sqrtM1 = field.Element{
		0xa0b0, 0x4a0e, 0x1b27, 0xc4ee, 0xe478, 0xad2f, 0x1806, 0x2f43,
		0xd7a7, 0x3dfb, 0x0099, 0x2b4d, 0xdf0b, 0x4fc1, 0x2480, 0x2b83,
	}
	baseX = field.Element{
		0xd51a, 0x8f25, 0x2d60, 0xc956, 0xa7b2, 0x9525, 0xc760, 0x692c,
		0xdc5c, 0xfdd6, 0xe231, 0xc0a4, 0x53fe, 0xcd6e, 0x36d3, 0x2169,
	}
	baseY = field.Element{
		0x6658, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
		0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
	}
)

// Point is a point on the twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2
// in extended coordinates (X:Y:Z:T), with x = X/Z, y = Y/Z and T*Z = X*Y.
type Point struct {
	x, y, z, t field.Element
}

// NewIdentityPoint returns the neutral element (0, 1).
func NewIdentityPoint() *Point {
	p := new(Point)
	p.y.One()
	p.z.One()
	return p
}

// NewGeneratorPoint returns the base point B.
func NewGeneratorPoint() *Point {
	p := &Point{x: baseX, y: baseY}
	p.z.One()
	p.t.Multiply(&baseX, &baseY)
	return p
}

// Set sets v = u and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Add sets v = p + q and returns v. The formula is complete, so p and q
// may be equal.
func (v *Point) Add(p, q *Point) *Point {
	var a, b, c, dd, e, f, g, h, t field.Element

	a.Subtract(&p.y, &p.x)
	t.Subtract(&q.y, &q.x)
	a.Multiply(&a, &t)
	b.Add(&p.x, &p.y)
	t.Add(&q.x, &q.y)
	b.Multiply(&b, &t)
	c.Multiply(&p.t, &q.t)
	c.Multiply(&c, &d2)
	dd.Multiply(&p.z, &q.z)
	dd.Add(&dd, &dd)
	e.Subtract(&b, &a)
	f.Subtract(&dd, &c)
	g.Add(&dd, &c)
	h.Add(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&h, &g)
	v.z.Multiply(&g, &f)
	v.t.Multiply(&e, &h)
	return v
}

// Negate sets v = -p and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// swap exchanges p and q when cond == 1.
func swap(p, q *Point, cond int) {
	p.x.Swap(&q.x, cond)
	p.y.Swap(&q.y, cond)
	p.z.Swap(&q.z, cond)
	p.t.Swap(&q.t, cond)
}

// Bytes returns the 32-byte encoding of v: the canonical y coordinate
// with the parity of x in the top bit.
func (v *Point) Bytes() [32]byte {
	var zInv, x, y field.Element
	zInv.Invert(&v.z)
	x.Multiply(&v.x, &zInv)
	y.Multiply(&v.y, &zInv)

	out := y.Bytes()
	out[31] ^= byte(x.IsNegative() << 7)
	return out
}

// Equal returns 1 if v and u encode to the same bytes, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	a, b := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:])
}

// SetBytes decodes a 32-byte point encoding into v. It returns an error if
// the y coordinate has no matching x on the curve.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	var y, u, w, t, chk field.Element
	if _, err := y.SetBytes(x); err != nil {
		return nil, err
	}

	// x^2 = u/w with u = y^2 - 1 and w = d*y^2 + 1.
	var one field.Element
	one.One()
	u.Square(&y)
	w.Multiply(&u, &d)
	u.Subtract(&u, &one)
	w.Add(&w, &one)

	// Candidate root (u*w^7)^((p-5)/8) * u * w^3.
	var w2, w4, w6 field.Element
	w2.Square(&w)
	w4.Square(&w2)
	w6.Multiply(&w4, &w2)
	t.Multiply(&w6, &u)
	t.Multiply(&t, &w)
	t.Pow22523(&t)
	t.Multiply(&t, &u)
	t.Multiply(&t, &w)
	t.Multiply(&t, &w)
	t.Multiply(&t, &w)

	// If t^2*w == -u the root is off by a factor of sqrt(-1).
	var tI field.Element
	tI.Multiply(&t, &sqrtM1)
	chk.Square(&t)
	chk.Multiply(&chk, &w)
	t.Select(&t, &tI, chk.Equal(&u))

	chk.Square(&t)
	chk.Multiply(&chk, &w)
	if chk.Equal(&u) != 1 {
		return nil, errNotOnCurve
	}

	var negT field.Element
	negT.Negate(&t)
	sign := int(x[31] >> 7)
	t.Select(&negT, &t, t.IsNegative()^sign)

	v.x = t
	v.y = y
	v.z.One()
	v.t.Multiply(&t, &y)
	return v, nil
}
