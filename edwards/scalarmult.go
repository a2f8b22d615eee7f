package edwards

// ScalarMult sets v = s * q and returns v, where s is a 32-byte
// little-endian integer. All 256 bits of s are processed, most significant
// first, with a constant-time swap between the two accumulators.
func (v *Point) ScalarMult(s *[32]byte, q *Point) *Point {
	p := NewIdentityPoint()
	r := *q
	for i := 255; i >= 0; i-- {
		b := int(s[i/8]>>(i&7)) & 1
		swap(p, &r, b)
		r.Add(&r, p)
		p.Add(p, p)
		swap(p, &r, b)
	}
	*v = *p
	return v
}

// ScalarBaseMult sets v = s * B and returns v.
func (v *Point) ScalarBaseMult(s *[32]byte) *Point {
	return v.ScalarMult(s, NewGeneratorPoint())
}
