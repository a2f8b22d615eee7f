// Package ed25519 implements types.Signer with filippo.io/edwards25519. It
// produces and accepts exactly the same keys and signatures as the edwards
// package and serves as its reference backend.
package ed25519

import (
	"crypto/sha512"
	"crypto/subtle"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/athanorlabs/go-wavesauth/types"
)

var _ types.Signer = &CurveImpl{}

var noncePrefix = func() [32]byte {
	var p [32]byte
	p[0] = 0xfe
	for i := 1; i < len(p); i++ {
		p[i] = 0xff
	}
	return p
}()

type CurveImpl struct{}

func NewCurve() types.Signer {
	return &CurveImpl{}
}

func clamp(k []byte) [32]byte {
	var s [32]byte
	copy(s[:], k)
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
	return s
}

// scalarFromBytes reduces a little-endian value of up to 64 bytes mod L.
func scalarFromBytes(b []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], b)
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	return s
}

func (c *CurveImpl) GenerateKeyPair(seed []byte) (*types.KeyPair, error) {
	if len(seed) != types.SeedSize {
		return nil, types.ErrInvalidSeedLength
	}

	sk := clamp(seed)
	P := new(edwards25519.Point).ScalarBaseMult(scalarFromBytes(sk[:]))

	kp := &types.KeyPair{Private: sk}
	copy(kp.Public[:], P.BytesMontgomery())
	kp.Public[31] &= 127
	return kp, nil
}

func (c *CurveImpl) Sign(privateKey, message, random []byte) ([]byte, error) {
	if len(privateKey) != types.PrivateKeySize {
		return nil, types.ErrInvalidPrivateKeyLength
	}
	if random != nil && len(random) != types.RandomSize {
		return nil, types.ErrInvalidRandomLength
	}

	sk := clamp(privateKey)
	a := scalarFromBytes(sk[:])
	A := new(edwards25519.Point).ScalarBaseMult(a).Bytes()

	h := sha512.New()
	if random != nil {
		h.Write(noncePrefix[:])
	}
	h.Write(sk[:])
	h.Write(message)
	if random != nil {
		h.Write(random)
	}
	r := scalarFromBytes(h.Sum(nil))
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(A)
	h.Write(message)
	k := scalarFromBytes(h.Sum(nil))

	S := new(edwards25519.Scalar).MultiplyAdd(k, a, r)

	sig := make([]byte, 0, types.SignatureSize)
	sig = append(sig, R...)
	sig = append(sig, S.Bytes()...)
	sig[63] |= A[31] & 128
	return sig, nil
}

func (c *CurveImpl) Verify(publicKey, message, signature []byte) (bool, error) {
	if len(signature) != types.SignatureSize {
		return false, types.ErrInvalidSignatureLength
	}
	if len(publicKey) != types.PublicKeySize {
		return false, types.ErrInvalidPublicKeyLength
	}
	if publicKey[31]&128 != 0 {
		return false, nil
	}

	edpk, err := edwardsPublicKey(publicKey, signature[63]&128)
	if err != nil {
		return false, nil
	}
	A, err := new(edwards25519.Point).SetBytes(edpk)
	if err != nil {
		return false, nil
	}

	var s [32]byte
	copy(s[:], signature[32:])
	s[31] &= 127

	h := sha512.New()
	h.Write(signature[:32])
	h.Write(edpk)
	h.Write(message)
	k := scalarFromBytes(h.Sum(nil))

	// R' = S*B - k*A
	check := new(edwards25519.Point).ScalarMult(k, new(edwards25519.Point).Negate(A))
	check.Add(check, new(edwards25519.Point).ScalarBaseMult(scalarFromBytes(s[:])))
	return subtle.ConstantTimeCompare(check.Bytes(), signature[:32]) == 1, nil
}

// edwardsPublicKey maps the Montgomery u-coordinate to y = (u - 1) / (u + 1)
// and stores signBit as the sign of x.
func edwardsPublicKey(u []byte, signBit byte) ([]byte, error) {
	x, err := new(field.Element).SetBytes(u)
	if err != nil {
		return nil, err
	}
	one := new(field.Element).One()
	den := new(field.Element).Add(x, one)
	num := new(field.Element).Subtract(x, one)
	y := num.Multiply(num, den.Invert(den))

	edpk := y.Bytes()
	edpk[31] |= signBit
	return edpk, nil
}
