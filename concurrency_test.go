package wavesauth

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-wavesauth/base58"
	"github.com/athanorlabs/go-wavesauth/blake2b"
	"github.com/athanorlabs/go-wavesauth/keccak"
)

// The primitives keep all state per call, so one Auth and the package-level
// hash functions can be shared by any number of goroutines.
func TestConcurrentUse(t *testing.T) {
	const workers = 16

	pubKeys := make([][]byte, len(walletVectors))
	keccakSums := make([][32]byte, len(walletVectors))
	blakeSums := make([][32]byte, len(walletVectors))
	for i, v := range walletVectors {
		pk, err := base58.Decode(v.publicKey)
		require.NoError(t, err)
		pubKeys[i] = pk
		keccakSums[i] = keccak.Sum256(pk)
		blakeSums[i] = blake2b.Sum256(pk)
	}

	for name, opts := range backends {
		a := New(opts...)
		seed, err := NewSeed()
		require.NoError(t, err)
		kp, err := a.GenerateKeyPair(seed)
		require.NoError(t, err)
		signer := base58.Encode(kp.Public[:])

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				i := w % len(walletVectors)
				v := walletVectors[i]

				ok, err := a.Verify(v.publicKey, v.signature, v.host, v.data)
				assert.NoError(t, err)
				assert.True(t, ok, "%s worker %d", name, w)

				addr, err := a.Address(pubKeys[i])
				assert.NoError(t, err)
				assert.Equal(t, v.address, addr)

				valid, err := a.IsValidAddress(addr)
				assert.NoError(t, err)
				assert.True(t, valid)

				assert.Equal(t, keccakSums[i], keccak.Sum256(pubKeys[i]))
				assert.Equal(t, blakeSums[i], blake2b.Sum256(pubKeys[i]))

				sig, err := a.Sign(kp.Private[:], v.host, v.data)
				assert.NoError(t, err)
				ok, err = a.Verify(signer, sig, v.host, v.data)
				assert.NoError(t, err)
				assert.True(t, ok, "%s worker %d own signature", name, w)
			}(w)
		}
		wg.Wait()
	}
}
