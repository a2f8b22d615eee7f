package edwards

import (
	"crypto/subtle"
	"runtime"

	"github.com/athanorlabs/go-wavesauth/types"
	"github.com/athanorlabs/go-wavesauth/widehash"
)

// noncePrefix separates randomized nonce hashes from the deterministic ones.
var noncePrefix = [32]byte{
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Sign signs message with a Curve25519 private key. If random is nil the
// nonce is SHA-512(key || message); otherwise random must hold 64 bytes and
// the nonce is SHA-512(prefix || key || message || random). The sign bit of
// the Edwards public key is carried in the top bit of the signature.
func Sign(privateKey, message, random []byte) ([]byte, error) {
	if len(privateKey) != types.PrivateKeySize {
		return nil, types.ErrInvalidPrivateKeyLength
	}
	if random != nil && len(random) != types.RandomSize {
		return nil, types.ErrInvalidRandomLength
	}

	sk := clamp(privateKey)
	defer wipe(sk[:])
	pk := new(Point).ScalarBaseMult(&sk).Bytes()
	signBit := pk[31] & 128

	h := widehash.New()
	defer h.Reset()
	if random != nil {
		_, _ = h.Write(noncePrefix[:])
	}
	_, _ = h.Write(sk[:])
	_, _ = h.Write(message)
	if random != nil {
		_, _ = h.Write(random)
	}
	var digest [64]byte
	h.Sum(digest[:0])
	r := reduce(&digest)
	defer wipe(r[:])

	R := new(Point).ScalarBaseMult(&r).Bytes()

	h.Reset()
	_, _ = h.Write(R[:])
	_, _ = h.Write(pk[:])
	_, _ = h.Write(message)
	h.Sum(digest[:0])
	k := reduce(&digest)
	wipe(digest[:])

	S := mulAdd(&k, &sk, &r)

	sig := make([]byte, types.SignatureSize)
	copy(sig[:32], R[:])
	copy(sig[32:], S[:])
	sig[63] |= signBit
	return sig, nil
}

// Verify reports whether signature is a valid signature of message by the
// Curve25519 public key publicKey.
func Verify(publicKey, message, signature []byte) (bool, error) {
	if len(signature) != types.SignatureSize {
		return false, types.ErrInvalidSignatureLength
	}
	if len(publicKey) != types.PublicKeySize {
		return false, types.ErrInvalidPublicKeyLength
	}

	sm := make([]byte, types.SignatureSize+len(message))
	copy(sm, signature)
	copy(sm[types.SignatureSize:], message)
	return open(publicKey, sm), nil
}

// Open verifies a signed message, the 64-byte signature followed by the
// message, and returns the message. ok is false if the signature is
// invalid or signedMessage is too short to hold one.
func Open(publicKey, signedMessage []byte) (message []byte, ok bool, err error) {
	if len(publicKey) != types.PublicKeySize {
		return nil, false, types.ErrInvalidPublicKeyLength
	}
	if len(signedMessage) < types.SignatureSize {
		return nil, false, nil
	}

	sm := make([]byte, len(signedMessage))
	copy(sm, signedMessage)
	if !open(publicKey, sm) {
		wipe(sm)
		return nil, false, nil
	}
	return sm[types.SignatureSize:], true, nil
}

// open checks the signature at the front of sm, which it may modify.
func open(publicKey, sm []byte) bool {
	// GenerateKeyPair never sets bit 255 of a public key.
	if publicKey[31]&128 != 0 {
		return false
	}

	var u [32]byte
	copy(u[:], publicKey)
	edpk := edwardsY(&u)
	edpk[31] |= sm[63] & 128
	sm[63] &= 127

	A, err := new(Point).SetBytes(edpk[:])
	if err != nil {
		return false
	}
	A.Negate(A)

	h := widehash.New()
	_, _ = h.Write(sm[:32])
	_, _ = h.Write(edpk[:])
	_, _ = h.Write(sm[types.SignatureSize:])
	var digest [64]byte
	h.Sum(digest[:0])
	k := reduce(&digest)

	var s [32]byte
	copy(s[:], sm[32:64])

	// R' = S*B - k*A
	check := new(Point).ScalarMult(&k, A)
	check.Add(check, new(Point).ScalarBaseMult(&s))
	R := check.Bytes()
	return subtle.ConstantTimeCompare(sm[:32], R[:]) == 1
}

// wipe zeroes b.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
