package keccak

import "encoding/binary"

const (
	// stateSize is the width of the Keccak-f[1600] state in bytes.
	stateSize = 200

	// maxRate is the widest rate in use, the one of Keccak-256:
	// (1600 - 2*256) / 8 = 136 bytes.
	maxRate = stateSize - 2*Size256

	// dsByte is the legacy Keccak padding start byte. NIST SHA-3 uses 0x06.
	dsByte = 0x01
)

// rateFor returns the sponge rate for a digest of outputLen bytes.
func rateFor(outputLen int) int {
	return stateSize - 2*outputLen
}

// sponge is the absorb/squeeze engine shared by every width. It streams
// full blocks into the state as they arrive and keeps at most one partial
// block buffered.
type sponge struct {
	a      [lanes]uint64
	buf    [maxRate]byte
	n      int // bytes in buf
	rate   int
	length uint64 // bytes absorbed since reset
}

func (s *sponge) reset() {
	s.a = [lanes]uint64{}
	s.n = 0
	s.length = 0
}

func (s *sponge) absorb(p []byte) {
	s.length += uint64(len(p))

	if s.n > 0 {
		k := copy(s.buf[s.n:s.rate], p)
		s.n += k
		p = p[k:]
		if s.n == s.rate {
			xorIn(&s.a, s.buf[:s.rate])
			keccakF1600(&s.a)
			s.n = 0
		}
	}

	for len(p) >= s.rate {
		xorIn(&s.a, p[:s.rate])
		keccakF1600(&s.a)
		p = p[s.rate:]
	}

	if len(p) > 0 {
		s.n = copy(s.buf[:], p)
	}
}

// finalize pads the buffered tail with 10*1 and squeezes len(dst) bytes.
// It works on a copy of the state, so s can keep absorbing afterwards.
func (s *sponge) finalize(dst []byte) {
	a := s.a
	xorIn(&a, s.buf[:s.n])
	xorByte(&a, s.n, dsByte)
	xorByte(&a, s.rate-1, 0x80)
	keccakF1600(&a)
	squeeze(&a, s.rate, dst)
}

// squeeze reads dst from the first rate bytes of a, permuting between
// blocks when dst is longer than the rate.
func squeeze(a *[lanes]uint64, rate int, dst []byte) {
	var block [maxRate]byte
	for {
		for i := 0; i < rate/8; i++ {
			binary.LittleEndian.PutUint64(block[8*i:], a[i])
		}
		n := copy(dst, block[:rate])
		dst = dst[n:]
		if len(dst) == 0 {
			return
		}
		keccakF1600(a)
	}
}

// xorIn XORs data into the beginning of the state, lanes little-endian.
func xorIn(a *[lanes]uint64, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= binary.LittleEndian.Uint64(data[8*i:])
	}
	for i := n << 3; i < len(data); i++ {
		xorByte(a, i, data[i])
	}
}

// xorByte XORs b into byte i of the state.
func xorByte(a *[lanes]uint64, i int, b byte) {
	a[i>>3] ^= uint64(b) << ((i & 7) << 3)
}
