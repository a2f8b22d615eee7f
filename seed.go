package wavesauth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/athanorlabs/go-wavesauth/types"
)

// NewSeed returns a random 32-byte seed for GenerateKeyPair.
func NewSeed() ([]byte, error) {
	seed := make([]byte, types.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return seed, nil
}

// SeedHash derives the account seed for a seed phrase:
// SHA-256(Keccak-256(Blake2b-256(nonce || phrase))) with a big-endian
// uint32 nonce. Wallets use nonce 0 for the first account.
func (a *Auth) SeedHash(phrase string, nonce uint32) [32]byte {
	b := binary.BigEndian.AppendUint32(make([]byte, 0, 4+len(phrase)), nonce)
	b = append(b, phrase...)
	return sha256.Sum256(a.hashChain(b))
}

// KeyPairFromSeed returns the key pair of account nonce of a seed phrase.
func (a *Auth) KeyPairFromSeed(phrase string, nonce uint32) (*types.KeyPair, error) {
	seed := a.SeedHash(phrase, nonce)
	return a.signer.GenerateKeyPair(seed[:])
}

// GenerateKeyPair returns the key pair for a raw 32-byte seed.
func (a *Auth) GenerateKeyPair(seed []byte) (*types.KeyPair, error) {
	return a.signer.GenerateKeyPair(seed)
}
