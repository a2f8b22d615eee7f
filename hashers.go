package wavesauth

import (
	xblake2b "golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/athanorlabs/go-wavesauth/blake2b"
	"github.com/athanorlabs/go-wavesauth/keccak"
	"github.com/athanorlabs/go-wavesauth/types"
)

var (
	_ types.Hasher = blake2bHasher{}
	_ types.Hasher = keccakHasher{}
	_ types.Hasher = referenceBlake2bHasher{}
	_ types.Hasher = referenceKeccakHasher{}
)

type blake2bHasher struct{}

func (blake2bHasher) Hash(in []byte) []byte {
	sum := blake2b.Sum256(in)
	return sum[:]
}

func (blake2bHasher) Size() int { return blake2b.Size256 }

type keccakHasher struct{}

func (keccakHasher) Hash(in []byte) []byte {
	sum := keccak.Sum256(in)
	return sum[:]
}

func (keccakHasher) Size() int { return 32 }

type referenceBlake2bHasher struct{}

func (referenceBlake2bHasher) Hash(in []byte) []byte {
	sum := xblake2b.Sum256(in)
	return sum[:]
}

func (referenceBlake2bHasher) Size() int { return xblake2b.Size256 }

type referenceKeccakHasher struct{}

func (referenceKeccakHasher) Hash(in []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(in)
	return h.Sum(nil)
}

func (referenceKeccakHasher) Size() int { return 32 }
