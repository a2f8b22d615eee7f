package edwards

import (
	"math/rand"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
)

func randomScalarBytes(r *rand.Rand) [32]byte {
	var s [32]byte
	r.Read(s[:])
	return s
}

func referenceScalar(t *testing.T, s [32]byte) *edwards25519.Scalar {
	t.Helper()
	var wide [64]byte
	copy(wide[:], s[:])
	sc, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	require.NoError(t, err)
	return sc
}

func TestGeneratorEncoding(t *testing.T) {
	b := NewGeneratorPoint().Bytes()
	require.Equal(t, edwards25519.NewGeneratorPoint().Bytes(), b[:])

	id := NewIdentityPoint().Bytes()
	require.Equal(t, edwards25519.NewIdentityPoint().Bytes(), id[:])
}

func TestScalarBaseMultMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		s := randomScalarBytes(r)
		got := new(Point).ScalarBaseMult(&s).Bytes()
		want := new(edwards25519.Point).ScalarBaseMult(referenceScalar(t, s))
		require.Equal(t, want.Bytes(), got[:])
	}
}

func TestScalarMultMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		k := randomScalarBytes(r)
		s := randomScalarBytes(r)

		q := new(Point).ScalarBaseMult(&k)
		got := new(Point).ScalarMult(&s, q).Bytes()

		refQ := new(edwards25519.Point).ScalarBaseMult(referenceScalar(t, k))
		want := new(edwards25519.Point).ScalarMult(referenceScalar(t, s), refQ)
		require.Equal(t, want.Bytes(), got[:])
	}
}

func TestAddIsUnified(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := randomScalarBytes(r)
	p := new(Point).ScalarBaseMult(&s)

	doubled := new(Point).Add(p, p)
	sum := new(Point).Add(p, NewIdentityPoint())
	require.Equal(t, 1, sum.Equal(p))

	refP := new(edwards25519.Point).ScalarBaseMult(referenceScalar(t, s))
	want := new(edwards25519.Point).Add(refP, refP)
	got := doubled.Bytes()
	require.Equal(t, want.Bytes(), got[:])

	neg := new(Point).Negate(p)
	zero := new(Point).Add(p, neg)
	require.Equal(t, 1, zero.Equal(NewIdentityPoint()))
}

func TestSetBytesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		s := randomScalarBytes(r)
		enc := new(Point).ScalarBaseMult(&s).Bytes()

		p, err := new(Point).SetBytes(enc[:])
		require.NoError(t, err)
		got := p.Bytes()
		require.Equal(t, enc, got)
	}
}

func TestSetBytesMatchesReference(t *testing.T) {
	for y := 0; y < 64; y++ {
		var enc [32]byte
		enc[0] = byte(y)

		p, err := new(Point).SetBytes(enc[:])
		ref, refErr := new(edwards25519.Point).SetBytes(enc[:])
		if refErr != nil {
			require.Error(t, err, "y = %d", y)
			continue
		}
		require.NoError(t, err, "y = %d", y)
		got := p.Bytes()
		require.Equal(t, ref.Bytes(), got[:])
	}

	_, err := new(Point).SetBytes(make([]byte, 31))
	require.Error(t, err)
}
