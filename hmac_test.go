package keccak

import (
	"bytes"
	"crypto/hmac"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func refHMAC256(key, msg []byte) []byte {
	m := hmac.New(sha3.NewLegacyKeccak256, key)
	m.Write(msg)
	return m.Sum(nil)
}

func refHMAC512(key, msg []byte) []byte {
	m := hmac.New(sha3.NewLegacyKeccak512, key)
	m.Write(msg)
	return m.Sum(nil)
}

func TestHMACMatchesReference(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	// Key lengths around both rates.
	for _, n := range []int{0, 1, 20, 32, 64, 71, 72, 73, 135, 136, 137, 300} {
		key := bytes.Repeat([]byte{0x0b}, n)

		got256 := MAC256(key, msg)
		require.Equalf(t, refHMAC256(key, msg), got256[:], "256 keylen=%d", n)

		got512 := MAC512(key, msg)
		require.Equalf(t, refHMAC512(key, msg), got512[:], "512 keylen=%d", n)
	}
}

func TestHMACStreaming(t *testing.T) {
	key := []byte("key")
	m := NewHMAC256(key)
	m.Append([]byte("The quick brown fox ")).Append([]byte("jumps over the lazy dog"))
	want := MAC256(key, []byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, want[:], m.Sum(nil))

	// Sum leaves the MAC usable.
	require.Equal(t, want[:], m.Sum(nil))
}

func TestHMACReset(t *testing.T) {
	key := []byte("reset key")
	m := NewHMAC512(key)
	m.Write([]byte("discarded"))
	m.Reset()
	m.Write([]byte("kept"))
	want := MAC512(key, []byte("kept"))
	require.Equal(t, want[:], m.Sum(nil))
}

func TestHMACKeyShortening(t *testing.T) {
	msg := []byte("message")

	long256 := bytes.Repeat([]byte{0xaa}, rate256+1)
	short256 := Sum256(long256)
	assert.Equal(t, MAC256(short256[:], msg), MAC256(long256, msg))

	long512 := bytes.Repeat([]byte{0xaa}, rate512+1)
	short512 := Sum512(long512)
	assert.Equal(t, MAC512(short512[:], msg), MAC512(long512, msg))
}

func TestHMACSensitivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	key := []byte("sensitivity key")
	msg := []byte("sensitivity message")
	base := MAC256(key, msg)

	for i := 0; i < 32; i++ {
		k := bytes.Clone(key)
		bit := rng.IntN(len(k) * 8)
		k[bit/8] ^= 1 << (bit % 8)
		assert.NotEqual(t, base, MAC256(k, msg))

		m := bytes.Clone(msg)
		bit = rng.IntN(len(m) * 8)
		m[bit/8] ^= 1 << (bit % 8)
		assert.NotEqual(t, base, MAC256(key, m))
	}
}

func TestHMACWidths(t *testing.T) {
	m, err := NewHMAC(256, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, Size256, m.Size())
	assert.Equal(t, rate256, m.BlockSize())
	assert.Len(t, m.Sum(nil), Size256)
	assert.Len(t, m.Hex(), 2*Size256)

	m, err = NewHMAC(512, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, Size512, m.Size())
	assert.Equal(t, rate512, m.BlockSize())
	assert.Len(t, m.Sum(nil), Size512)

	_, err = NewHMAC(384, []byte("k"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOutputLength))
}

func FuzzHMAC256(f *testing.F) {
	f.Add([]byte(nil), []byte(nil))
	f.Add([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
	f.Add(make([]byte, rate256+1), make([]byte, rate256*2))

	f.Fuzz(func(t *testing.T, key, msg []byte) {
		got := MAC256(key, msg)
		if want := refHMAC256(key, msg); !bytes.Equal(got[:], want) {
			t.Fatalf("MAC256 mismatch keylen=%d msglen=%d\ngot:  %x\nwant: %x", len(key), len(msg), got, want)
		}
	})
}
