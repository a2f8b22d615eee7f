package wavesauth

import (
	"crypto/subtle"
	"fmt"

	"github.com/athanorlabs/go-wavesauth/base58"
	"github.com/athanorlabs/go-wavesauth/types"
)

const (
	addressVersion    = 1
	publicKeyHashSize = 20
	checksumSize      = 4
	AddressSize       = 2 + publicKeyHashSize + checksumSize
)

// Address returns the base58 address of a 32-byte public key:
// version, chain id, the first 20 bytes of the hashed key and a 4-byte
// checksum over the preceding 22 bytes.
func (a *Auth) Address(publicKey []byte) (string, error) {
	if len(publicKey) != types.PublicKeySize {
		return "", types.ErrInvalidPublicKeyLength
	}

	raw := make([]byte, 0, AddressSize)
	raw = append(raw, addressVersion, a.chainID)
	raw = append(raw, a.hashChain(publicKey)[:publicKeyHashSize]...)
	raw = append(raw, a.hashChain(raw)[:checksumSize]...)
	return base58.Encode(raw), nil
}

// AddressFromBase58 is Address for a base58 public key.
func (a *Auth) AddressFromBase58(publicKey string) (string, error) {
	pk, err := base58.Decode(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode public key: %w", err)
	}
	return a.Address(pk)
}

// IsValidAddress reports whether address carries this chain's prefix and a
// matching checksum. Only characters outside the base58 alphabet are
// reported as an error.
func (a *Auth) IsValidAddress(address string) (bool, error) {
	b, err := base58.Decode(address)
	if err != nil {
		return false, err
	}

	if len(b) != AddressSize || b[0] != addressVersion || b[1] != a.chainID {
		return false, nil
	}

	sum := a.hashChain(b[:AddressSize-checksumSize])
	return subtle.ConstantTimeCompare(b[AddressSize-checksumSize:], sum[:checksumSize]) == 1, nil
}
