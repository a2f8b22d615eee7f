package edwards

import (
	"github.com/athanorlabs/go-wavesauth/types"
)

// GenerateKeyPair derives a key pair from a 32-byte seed. The private key
// is the clamped seed; the public key is the Montgomery u-coordinate of
// private*B with bit 255 cleared.
func GenerateKeyPair(seed []byte) (*types.KeyPair, error) {
	if len(seed) != types.SeedSize {
		return nil, types.ErrInvalidSeedLength
	}

	sk := clamp(seed)
	pk := X25519Base(&sk)
	pk[31] &= 127

	return &types.KeyPair{
		Public:  pk,
		Private: sk,
	}, nil
}

// EdwardsPublicKey returns the Edwards encoding of the public key belonging
// to privateKey, sign bit included.
func EdwardsPublicKey(privateKey []byte) ([32]byte, error) {
	if len(privateKey) != types.PrivateKeySize {
		return [32]byte{}, types.ErrInvalidPrivateKeyLength
	}

	sk := clamp(privateKey)
	defer wipe(sk[:])
	return new(Point).ScalarBaseMult(&sk).Bytes(), nil
}
