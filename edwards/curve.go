package edwards

import "github.com/athanorlabs/go-wavesauth/types"

var _ types.Signer = &CurveImpl{}

// CurveImpl is the types.Signer backed by this package's field and curve
// arithmetic.
type CurveImpl struct{}

func NewCurve() types.Signer {
	return &CurveImpl{}
}

func (c *CurveImpl) GenerateKeyPair(seed []byte) (*types.KeyPair, error) {
	return GenerateKeyPair(seed)
}

func (c *CurveImpl) Sign(privateKey, message, random []byte) ([]byte, error) {
	return Sign(privateKey, message, random)
}

func (c *CurveImpl) Verify(publicKey, message, signature []byte) (bool, error) {
	return Verify(publicKey, message, signature)
}
