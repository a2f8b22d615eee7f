package types

import "errors"

// Sizes of the Curve25519-compatible key material and signatures.
const (
	PublicKeySize  = 32
	PrivateKeySize = 32
	SeedSize       = 32
	SignatureSize  = 64
	RandomSize     = 64
)

// Contract violations shared by every Signer implementation. A signature
// that does not verify is never reported through these; Verify returns false.
var (
	ErrInvalidSeedLength       = errors.New("wrong seed length")
	ErrInvalidPrivateKeyLength = errors.New("wrong private key length")
	ErrInvalidPublicKeyLength  = errors.New("wrong public key length")
	ErrInvalidSignatureLength  = errors.New("wrong signature length")
	ErrInvalidRandomLength     = errors.New("wrong random suffix length")
)

// KeyPair is a clamped private scalar and its Curve25519 public key.
type KeyPair struct {
	Public  [PublicKeySize]byte
	Private [PrivateKeySize]byte
}

type Signer interface {
	GenerateKeyPair(seed []byte) (*KeyPair, error)
	// Sign signs message with privateKey. random is nil for a deterministic
	// nonce, or exactly RandomSize bytes mixed into the nonce.
	Sign(privateKey, message, random []byte) ([]byte, error)
	Verify(publicKey, message, signature []byte) (bool, error)
}

type Hasher interface {
	Hash(in []byte) []byte
	Size() int
}
