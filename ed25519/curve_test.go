package ed25519

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-wavesauth/edwards"
	"github.com/athanorlabs/go-wavesauth/types"
)

const (
	wavesPublicKey = "3098d0ce525a62df6ec96f874c0bd764f25bec7045a87939bb0bdc3acccedd70"
	wavesSignature = "3220eb9b355e4478d022c17323919866d6e7d8ffa5536a578f2a41037502253a" +
		"09e026bf5de91b3ca5d553ac36f77a00d488adf6ca8a39bcf8fd5ee31e3fe108"
	wavesMessage = "0019576176657357616c6c657441757468656e7469636174696f6e001c616e73776572696e67" +
		"2e63727970746f627562626c65732e636c7562000a30313233343536373839"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestVerifyWalletSignature(t *testing.T) {
	c := NewCurve()
	ok, err := c.Verify(mustHex(t, wavesPublicKey), mustHex(t, wavesMessage), mustHex(t, wavesSignature))
	require.NoError(t, err)
	require.True(t, ok)

	sig := mustHex(t, wavesSignature)
	sig[5] ^= 0x10
	ok, err = c.Verify(mustHex(t, wavesPublicKey), mustHex(t, wavesMessage), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchesNative(t *testing.T) {
	ref := NewCurve()
	native := edwards.NewCurve()
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 32; i++ {
		seed := make([]byte, types.SeedSize)
		r.Read(seed)
		msg := make([]byte, r.Intn(300))
		r.Read(msg)

		kpRef, err := ref.GenerateKeyPair(seed)
		require.NoError(t, err)
		kpNative, err := native.GenerateKeyPair(seed)
		require.NoError(t, err)
		require.Equal(t, kpNative, kpRef)

		var random []byte
		if i%2 == 1 {
			random = make([]byte, types.RandomSize)
			r.Read(random)
		}

		sigRef, err := ref.Sign(kpRef.Private[:], msg, random)
		require.NoError(t, err)
		sigNative, err := native.Sign(kpNative.Private[:], msg, random)
		require.NoError(t, err)
		require.Equal(t, sigNative, sigRef)

		ok, err := ref.Verify(kpNative.Public[:], msg, sigNative)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = native.Verify(kpRef.Public[:], msg, sigRef)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// Both backends use S without a canonical range check, so S + L verifies
// wherever S does.
func TestNonCanonicalS(t *testing.T) {
	l, _ := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

	sig := mustHex(t, wavesSignature)
	sBytes := make([]byte, 32)
	copy(sBytes, sig[32:])
	signBit := sBytes[31] & 128
	sBytes[31] &= 127

	// little-endian to big.Int and back
	reverse := func(b []byte) []byte {
		out := make([]byte, len(b))
		for i := range b {
			out[len(b)-1-i] = b[i]
		}
		return out
	}
	s := new(big.Int).SetBytes(reverse(sBytes))
	s.Add(s, l)
	shifted := reverse(s.FillBytes(make([]byte, 32)))
	shifted[31] |= signBit
	copy(sig[32:], shifted)

	for _, c := range []types.Signer{NewCurve(), edwards.NewCurve()} {
		ok, err := c.Verify(mustHex(t, wavesPublicKey), mustHex(t, wavesMessage), sig)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestRejectsHighBitPublicKey(t *testing.T) {
	pk := mustHex(t, wavesPublicKey)
	pk[31] |= 128
	ok, err := NewCurve().Verify(pk, mustHex(t, wavesMessage), mustHex(t, wavesSignature))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestErrors(t *testing.T) {
	c := NewCurve()
	_, err := c.GenerateKeyPair(nil)
	require.ErrorIs(t, err, types.ErrInvalidSeedLength)
	_, err = c.Sign(make([]byte, 31), nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidPrivateKeyLength)
	_, err = c.Sign(make([]byte, 32), nil, bytes.Repeat([]byte{1}, 63))
	require.ErrorIs(t, err, types.ErrInvalidRandomLength)
	_, err = c.Verify(make([]byte, 32), nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidSignatureLength)
	_, err = c.Verify(nil, nil, make([]byte, 64))
	require.ErrorIs(t, err, types.ErrInvalidPublicKeyLength)
}
