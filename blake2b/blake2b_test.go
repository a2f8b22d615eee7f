package blake2b

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xblake2b "golang.org/x/crypto/blake2b"
)

func TestKnownAnswerFile(t *testing.T) {
	f, err := os.Open("testdata/blake2b-kat.txt")
	require.NoError(t, err)
	defer f.Close()

	vectors, err := ParseKAT(f)
	require.NoError(t, err)
	require.Len(t, vectors, 256)

	for i, v := range vectors {
		require.Len(t, v.In, i)
		ok, err := v.Check()
		require.NoError(t, err)
		require.True(t, ok, "vector %d", i)
	}
}

func TestKnownAnswers(t *testing.T) {
	got, err := SumHex([]byte("abc"), nil, Size)
	require.NoError(t, err)
	require.Equal(t, "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1"+
		"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923", got)

	sum := Sum256([]byte("abc"))
	require.Equal(t, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
		hex.EncodeToString(sum[:]))

	got, err = SumHex([]byte("The quick brown fox jumps over the lazy dog"), []byte("k"), 20)
	require.NoError(t, err)
	require.Equal(t, "92d81d9d7553f2e306242a9ccff58d0a5b5c35b7", got)

	empty := Sum512(nil)
	require.Equal(t, "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419"+
		"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		hex.EncodeToString(empty[:]))
}

func TestMatchesReference(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	for n := 0; n < 3*BlockSize+2; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(3*i + n)
		}

		want := xblake2b.Sum256(msg)
		got := Sum256(msg)
		require.Equal(t, want, got, "length %d", n)

		ref, err := xblake2b.New(48, key)
		require.NoError(t, err)
		ref.Write(msg)
		keyed, err := Sum(msg, key, 48)
		require.NoError(t, err)
		require.Equal(t, ref.Sum(nil), keyed, "keyed length %d", n)
	}
}

func TestStreaming(t *testing.T) {
	msg := []byte(strings.Repeat("waves", 100))
	key := []byte("secret")
	want, err := Sum(msg, key, Size)
	require.NoError(t, err)

	for _, chunk := range []int{1, 5, BlockSize - 1, BlockSize, BlockSize + 1} {
		h, err := New(Size, key)
		require.NoError(t, err)
		for off := 0; off < len(msg); off += chunk {
			end := off + chunk
			if end > len(msg) {
				end = len(msg)
			}
			_, err := h.Write(msg[off:end])
			require.NoError(t, err)
		}
		require.Equal(t, want, h.Sum(nil), "chunk %d", chunk)
		require.Equal(t, want, h.Sum(nil))

		h.Reset()
		_, err = h.Write(msg)
		require.NoError(t, err)
		require.Equal(t, want, h.Sum(nil))
	}
}

func TestExactBlockBoundary(t *testing.T) {
	// A message filling the buffer exactly must be compressed as the last
	// block, not as a regular one followed by an empty final block.
	for _, n := range []int{BlockSize, 2 * BlockSize} {
		msg := make([]byte, n)
		want := xblake2b.Sum512(msg)
		require.Equal(t, want, Sum512(msg))
	}

	// Keyed hash of the empty message compresses only the key block.
	key := []byte{1, 2, 3}
	ref, err := xblake2b.New512(key)
	require.NoError(t, err)
	got, err := Sum(nil, key, Size)
	require.NoError(t, err)
	require.Equal(t, ref.Sum(nil), got)
}

func TestParameterErrors(t *testing.T) {
	for _, size := range []int{-1, 0, 65} {
		_, err := New(size, nil)
		require.ErrorIs(t, err, ErrInvalidSize)
	}
	_, err := New(32, make([]byte, 65))
	require.ErrorIs(t, err, ErrKeyTooLong)

	_, err = Sum(nil, nil, 0)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = SumHex(nil, make([]byte, 65), 32)
	require.ErrorIs(t, err, ErrKeyTooLong)

	h, err := New(1, make([]byte, 64))
	require.NoError(t, err)
	require.Equal(t, 1, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
}

func TestParseKATErrors(t *testing.T) {
	_, err := ParseKAT(strings.NewReader("in:\tzz\n"))
	require.Error(t, err)
	_, err = ParseKAT(strings.NewReader("bogus line\n"))
	require.Error(t, err)
	_, err = ParseKAT(strings.NewReader("salt:\t00\n"))
	require.Error(t, err)

	vectors, err := ParseKAT(strings.NewReader("in:\t\nkey:\t\nhash:\t00\n\nin:\t01\n"))
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	require.Empty(t, vectors[0].In)
}
