package wavesauth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-wavesauth/base58"
	"github.com/athanorlabs/go-wavesauth/types"
)

func TestAddress(t *testing.T) {
	for name, opts := range backends {
		a := New(opts...)
		for _, v := range walletVectors {
			addr, err := a.AddressFromBase58(v.publicKey)
			require.NoError(t, err, name)
			require.Equal(t, v.address, addr, name)

			ok, err := a.IsValidAddress(addr)
			require.NoError(t, err)
			require.True(t, ok)
		}
	}
}

func TestAddressChainID(t *testing.T) {
	a := New(WithChainID(TestnetChainID))
	require.Equal(t, TestnetChainID, a.ChainID())

	addr, err := a.AddressFromBase58(walletVectors[0].publicKey)
	require.NoError(t, err)
	require.Equal(t, "3Mzdnb6MkQoiZqWRpGw5voHaRHo8HPXJTSP", addr)

	ok, err := a.IsValidAddress(addr)
	require.NoError(t, err)
	require.True(t, ok)

	// A mainnet address is not valid on testnet and vice versa.
	ok, err = a.IsValidAddress(walletVectors[0].address)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = New().IsValidAddress(addr)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsValidAddressAlteredBytes(t *testing.T) {
	a := New()
	raw, err := base58.Decode(walletVectors[0].address)
	require.NoError(t, err)
	require.Len(t, raw, AddressSize)

	for i := range raw {
		for _, mask := range []byte{0x01, 0x80} {
			altered := append([]byte{}, raw...)
			altered[i] ^= mask
			ok, err := a.IsValidAddress(base58.Encode(altered))
			require.NoError(t, err)
			require.False(t, ok, "byte %d mask %#x", i, mask)
		}
	}

	ok, err := a.IsValidAddress(base58.Encode(append(raw, 0)))
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = a.IsValidAddress("")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAddressErrors(t *testing.T) {
	a := New()
	_, err := a.Address(make([]byte, 31))
	require.ErrorIs(t, err, types.ErrInvalidPublicKeyLength)

	var charErr *base58.CharacterError
	_, err = a.AddressFromBase58("4GhinWrfkJrLqtgNvLdNZipN2Ha92Z9W3Y1JBo8TLrc0")
	require.ErrorAs(t, err, &charErr)
	_, err = a.IsValidAddress("3PCebYRFcYM7CHor5MC5tFfPnBJu7Xv5gsI")
	require.ErrorAs(t, err, &charErr)
}

type countingHasher struct {
	types.Hasher
	calls int
}

func (c *countingHasher) Hash(in []byte) []byte {
	c.calls++
	return c.Hasher.Hash(in)
}

func TestWithHashers(t *testing.T) {
	blake := &countingHasher{Hasher: blake2bHasher{}}
	keccak := &countingHasher{Hasher: referenceKeccakHasher{}}
	a := New(WithHashers(blake, keccak))

	addr, err := a.AddressFromBase58(walletVectors[1].publicKey)
	require.NoError(t, err)
	require.Equal(t, walletVectors[1].address, addr)
	require.Equal(t, 2, blake.calls)
	require.Equal(t, 2, keccak.calls)
}
