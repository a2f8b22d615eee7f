package edwards

// order is the group order L = 2^252 + 27742317777372353535851937790883648493,
// little-endian.
var order = [32]int64{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0x10,
}

// modL reduces the 64 signed byte-sized limbs of x modulo L. x is
// clobbered.
func modL(x *[64]int64) [32]byte {
	// Fold the top 32 limbs down one at a time, using 2^256 = -16*(L - 2^252)
	// scaled to each position.
	for i := 63; i >= 32; i-- {
		var carry int64
		j := i - 32
		for ; j < i-12; j++ {
			x[j] += carry - 16*x[i]*order[j-(i-32)]
			carry = (x[j] + 128) >> 8
			x[j] -= carry << 8
		}
		x[j] += carry
		x[i] = 0
	}

	var carry int64
	for j := 0; j < 32; j++ {
		x[j] += carry - (x[31]>>4)*order[j]
		carry = x[j] >> 8
		x[j] &= 255
	}
	for j := 0; j < 32; j++ {
		x[j] -= carry * order[j]
	}

	var r [32]byte
	for i := 0; i < 32; i++ {
		x[i+1] += x[i] >> 8
		r[i] = byte(x[i] & 255)
	}
	return r
}

// reduce returns the 64-byte little-endian integer b modulo L.
func reduce(b *[64]byte) [32]byte {
	var x [64]int64
	for i := range b {
		x[i] = int64(b[i])
	}
	return modL(&x)
}

// mulAdd returns (h*a + r) mod L.
func mulAdd(h, a, r *[32]byte) [32]byte {
	var x [64]int64
	for i := 0; i < 32; i++ {
		x[i] = int64(r[i])
	}
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			x[i+j] += int64(h[i]) * int64(a[j])
		}
	}
	return modL(&x)
}

// clamp clears the three low bits and the top bit of k and sets bit 254.
func clamp(k []byte) [32]byte {
	var s [32]byte
	copy(s[:], k)
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
	return s
}
