// Package wavesauth verifies and produces Waves wallet authentication
// signatures and derives and validates Waves addresses.
package wavesauth

import (
	"crypto/rand"
	"fmt"

	"github.com/athanorlabs/go-wavesauth/base58"
	"github.com/athanorlabs/go-wavesauth/ed25519"
	"github.com/athanorlabs/go-wavesauth/edwards"
	"github.com/athanorlabs/go-wavesauth/types"
)

// Chain identifiers carried in the second byte of an address.
const (
	MainnetChainID byte = 'W'
	TestnetChainID byte = 'T'
)

// Auth ties a signer and the address hash chain to one network.
type Auth struct {
	signer  types.Signer
	blake   types.Hasher
	keccak  types.Hasher
	chainID byte
}

type Option func(*Auth)

// WithSigner replaces the native curve implementation.
func WithSigner(s types.Signer) Option {
	return func(a *Auth) {
		a.signer = s
	}
}

// WithHashers replaces the Blake2b-256 and Keccak-256 hashers of the
// address chain.
func WithHashers(blake, keccak types.Hasher) Option {
	return func(a *Auth) {
		a.blake = blake
		a.keccak = keccak
	}
}

func WithChainID(id byte) Option {
	return func(a *Auth) {
		a.chainID = id
	}
}

// WithReferenceBackend uses filippo.io/edwards25519 and golang.org/x/crypto
// in place of the native primitives.
func WithReferenceBackend() Option {
	return func(a *Auth) {
		a.signer = ed25519.NewCurve()
		a.blake = referenceBlake2bHasher{}
		a.keccak = referenceKeccakHasher{}
	}
}

// New returns a mainnet Auth on the native primitives unless opts say
// otherwise.
func New(opts ...Option) *Auth {
	a := &Auth{
		signer:  edwards.NewCurve(),
		blake:   blake2bHasher{},
		keccak:  keccakHasher{},
		chainID: MainnetChainID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Auth) ChainID() byte {
	return a.chainID
}

// Verify reports whether signature, as returned by the wallet, signs the
// authentication message for host and data under publicKey. The key and
// signature are base58 strings.
func (a *Auth) Verify(publicKey, signature, host, data string) (bool, error) {
	pk, err := base58.Decode(publicKey)
	if err != nil {
		return false, fmt.Errorf("failed to decode public key: %w", err)
	}
	sig, err := base58.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}
	m, err := Message(host, data)
	if err != nil {
		return false, err
	}
	return a.signer.Verify(pk, m, sig)
}

// Sign signs the authentication message for host and data the way the
// wallet does, mixing 64 fresh random bytes into the nonce, and returns the
// base58 signature.
func (a *Auth) Sign(privateKey []byte, host, data string) (string, error) {
	m, err := Message(host, data)
	if err != nil {
		return "", err
	}

	var random [types.RandomSize]byte
	if _, err := rand.Read(random[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	sig, err := a.signer.Sign(privateKey, m, random[:])
	if err != nil {
		return "", err
	}
	return base58.Encode(sig), nil
}

// hashChain is Keccak-256(Blake2b-256(in)).
func (a *Auth) hashChain(in []byte) []byte {
	return a.keccak.Hash(a.blake.Hash(in))
}
