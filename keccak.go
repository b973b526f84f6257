// Package keccak provides the legacy Keccak-256 and Keccak-512 hashes and
// HMAC over them.
//
// The padding is the original Keccak submission's (domain byte 0x01, final
// bit 0x80), the variant used by Ethereum and several proof-of-work coins,
// not NIST SHA-3's 0x06. Both widths share one sponge over a pure-Go
// Keccak-f[1600] permutation.
package keccak

import (
	"github.com/pkg/errors"
)

const (
	// Size256 is the size of a Keccak-256 digest in bytes.
	Size256 = 32

	// Size512 is the size of a Keccak-512 digest in bytes.
	Size512 = 64

	// rate256 is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate256 = stateSize - 2*Size256

	// rate512 is the sponge rate for Keccak-512: (1600 - 2*512) / 8 = 72 bytes.
	rate512 = stateSize - 2*Size512
)

// ErrUnsupportedOutputLength is returned when a hasher is requested at a
// width other than 256 or 512 bits.
var ErrUnsupportedOutputLength = errors.New("keccak: unsupported output length")

// outputLen maps a width in bits to the digest size in bytes.
func outputLen(bits int) (int, error) {
	switch bits {
	case 256:
		return Size256, nil
	case 512:
		return Size512, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedOutputLength, "%d bits", bits)
	}
}

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size256]byte {
	s := sponge{rate: rate256}
	s.absorb(data)
	var out [Size256]byte
	s.finalize(out[:])
	return out
}

// Sum512 computes the Keccak-512 hash of data.
func Sum512(data []byte) [Size512]byte {
	s := sponge{rate: rate512}
	s.absorb(data)
	var out [Size512]byte
	s.finalize(out[:])
	return out
}

// DoubleSum256 returns Keccak-256(Keccak-256(data)).
func DoubleSum256(data []byte) [Size256]byte {
	h := Sum256(data)
	return Sum256(h[:])
}

// DoubleSum512 returns Keccak-512(Keccak-512(data)).
func DoubleSum512(data []byte) [Size512]byte {
	h := Sum512(data)
	return Sum512(h[:])
}
