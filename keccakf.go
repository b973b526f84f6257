package keccak

import "math/bits"

const (
	// rounds is the number of rounds of Keccak-f[1600].
	rounds = 24

	// lanes is the number of 64-bit lanes in the 1600-bit state.
	lanes = 25
)

// rotation holds the ρ offsets, indexed [x][y].
var rotation = [5][5]uint8{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// roundConstants holds the ι constants, derived once from the LFSR.
var roundConstants = deriveRoundConstants()

func deriveRoundConstants() [rounds]uint64 {
	var rc [rounds]uint64
	r := uint8(1)
	for i := range rc {
		for j := 0; j < 7; j++ {
			rc[i] ^= uint64(r&1) << ((1 << j) - 1)
			r = r<<1 ^ (r>>7)*0x71
		}
	}
	return rc
}

// roundConstant computes the ι constant of round i directly from the LFSR
// x^8 + x^6 + x^5 + x^4 + 1, without the precomputed table.
func roundConstant(i int) uint64 {
	var rc uint64
	for j := 0; j < 7; j++ {
		if lfsrBit(7*i+j) {
			rc |= 1 << ((1 << j) - 1)
		}
	}
	return rc
}

// lfsrBit returns output bit t of the round constant LFSR.
func lfsrBit(t int) bool {
	r := uint16(1)
	for k := 0; k < t%255; k++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return r&1 == 1
}

// keccakF1600 applies the Keccak-f[1600] permutation to a in place.
func keccakF1600(a *[lanes]uint64) {
	permute(a, nil)
}

// permute runs the 24 rounds. trace, when set, is called after every round
// with the round index and the constant injected by ι.
func permute(a *[lanes]uint64, trace func(round int, rc uint64)) {
	var c, d [5]uint64
	var b [lanes]uint64
	for round, rc := range roundConstants {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		// ρ and π: (x,y) -> (y, 2x+3y)
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], int(rotation[x][y]))
			}
		}

		// χ
		for y := 0; y < lanes; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// ι
		a[0] ^= rc

		if trace != nil {
			trace(round, rc)
		}
	}
}
