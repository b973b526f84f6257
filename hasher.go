package keccak

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming Keccak hasher whose width is fixed at construction.
// The zero value is a ready-to-use Keccak-256 hasher and, like the arrays it
// holds, can live on the stack and be copied.
type Hasher struct {
	sponge
	size int
}

// New256 returns a Keccak-256 hasher.
func New256() *Hasher {
	return newHasher(Size256)
}

// New512 returns a Keccak-512 hasher.
func New512() *Hasher {
	return newHasher(Size512)
}

// New returns a hasher for the given width in bits, 256 or 512.
func New(bits int) (*Hasher, error) {
	size, err := outputLen(bits)
	if err != nil {
		return nil, err
	}
	return newHasher(size), nil
}

func newHasher(size int) *Hasher {
	return &Hasher{sponge: sponge{rate: rateFor(size)}, size: size}
}

func (h *Hasher) init() {
	if h.size == 0 {
		h.size = Size256
		h.rate = rate256
	}
}

// Reset clears the pending message. The width is kept.
func (h *Hasher) Reset() {
	h.init()
	h.sponge.reset()
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int {
	h.init()
	return h.size
}

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int {
	h.init()
	return h.rate
}

// Len returns the number of bytes written since the last reset.
func (h *Hasher) Len() uint64 {
	return h.length
}

// Write absorbs p. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.init()
	h.absorb(p)
	return len(p), nil
}

// WriteString absorbs the bytes of s.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Append absorbs p and returns h, for chaining.
func (h *Hasher) Append(p []byte) *Hasher {
	_, _ = h.Write(p)
	return h
}

// AppendString absorbs the bytes of s and returns h.
func (h *Hasher) AppendString(s string) *Hasher {
	_, _ = h.WriteString(s)
	return h
}

// AppendUint8 absorbs a single byte.
func (h *Hasher) AppendUint8(v uint8) *Hasher {
	return h.Append([]byte{v})
}

// AppendUint16 absorbs v in native byte order.
func (h *Hasher) AppendUint16(v uint16) *Hasher {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return h.Append(b[:])
}

// AppendUint32 absorbs v in native byte order.
func (h *Hasher) AppendUint32(v uint32) *Hasher {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return h.Append(b[:])
}

// AppendUint64 absorbs v in native byte order.
func (h *Hasher) AppendUint64(v uint64) *Hasher {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	return h.Append(b[:])
}

// AppendFloat32 absorbs the IEEE 754 bits of v in native byte order.
func (h *Hasher) AppendFloat32(v float32) *Hasher {
	return h.AppendUint32(math.Float32bits(v))
}

// AppendFloat64 absorbs the IEEE 754 bits of v in native byte order.
func (h *Hasher) AppendFloat64(v float64) *Hasher {
	return h.AppendUint64(math.Float64bits(v))
}

// Sum appends the digest of everything written so far to b.
// Does not modify the hasher state, so it can be called repeatedly.
func (h *Hasher) Sum(b []byte) []byte {
	h.init()
	var out [Size512]byte
	h.finalize(out[:h.size])
	return append(b, out[:h.size]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() []byte {
	return h.Sum(nil)
}

// Hex returns the current digest as lowercase hex.
func (h *Hasher) Hex() string {
	return hex.EncodeToString(h.Digest())
}
