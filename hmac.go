package keccak

import (
	"encoding/hex"
	"hash"
)

const (
	ipad = 0x36
	opad = 0x5c
)

var _ hash.Hash = (*HMAC)(nil)

// HMAC is the nested-hash MAC over Keccak-256 or Keccak-512, with the block
// size equal to the sponge rate. It produces the same tags as crypto/hmac
// over the legacy Keccak hashes.
type HMAC struct {
	inner Hasher
	outer Hasher // seeded with the outer padded key only
	ipad  [maxRate]byte
}

// NewHMAC256 returns an HMAC-Keccak-256 keyed with key.
func NewHMAC256(key []byte) *HMAC {
	return newHMAC(Size256, key)
}

// NewHMAC512 returns an HMAC-Keccak-512 keyed with key.
func NewHMAC512(key []byte) *HMAC {
	return newHMAC(Size512, key)
}

// NewHMAC returns an HMAC for the given width in bits, 256 or 512.
func NewHMAC(bits int, key []byte) (*HMAC, error) {
	size, err := outputLen(bits)
	if err != nil {
		return nil, err
	}
	return newHMAC(size, key), nil
}

func newHMAC(size int, key []byte) *HMAC {
	m := &HMAC{
		inner: *newHasher(size),
		outer: *newHasher(size),
	}
	rate := m.inner.BlockSize()

	if len(key) > rate {
		key = newHasher(size).Append(key).Digest()
	}
	var opadKey [maxRate]byte
	copy(m.ipad[:], key)
	copy(opadKey[:], key)
	for i := 0; i < rate; i++ {
		m.ipad[i] ^= ipad
		opadKey[i] ^= opad
	}

	m.inner.Append(m.ipad[:rate])
	m.outer.Append(opadKey[:rate])
	return m
}

// Reset drops the message, keeping the key.
func (m *HMAC) Reset() {
	m.inner.Reset()
	m.inner.Append(m.ipad[:m.inner.BlockSize()])
}

// Size returns the tag size in bytes.
func (m *HMAC) Size() int { return m.inner.Size() }

// BlockSize returns the block size, the sponge rate.
func (m *HMAC) BlockSize() int { return m.inner.BlockSize() }

// Write feeds p to the inner hash. It never returns an error.
func (m *HMAC) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Append feeds p to the inner hash and returns m, for chaining.
func (m *HMAC) Append(p []byte) *HMAC {
	m.inner.Append(p)
	return m
}

// Sum appends the tag of everything written so far to b. Does not modify m.
func (m *HMAC) Sum(b []byte) []byte {
	var in [Size512]byte
	inner := m.inner.Sum(in[:0])
	outer := m.outer
	outer.Append(inner)
	return outer.Sum(b)
}

// Hex returns the current tag as lowercase hex.
func (m *HMAC) Hex() string {
	return hex.EncodeToString(m.Sum(nil))
}

// MAC256 computes HMAC-Keccak-256 of msg under key.
func MAC256(key, msg []byte) [Size256]byte {
	var out [Size256]byte
	NewHMAC256(key).Append(msg).Sum(out[:0])
	return out
}

// MAC512 computes HMAC-Keccak-512 of msg under key.
func MAC512(key, msg []byte) [Size512]byte {
	var out [Size512]byte
	NewHMAC512(key).Append(msg).Sum(out[:0])
	return out
}
