// Package bch implements the systematic binary BCH(250,202,6) codec used to
// protect the T.018 frame's information block (spec.md §4.2).
//
// The encoder is a shift-subtract polynomial division over GF(2), the same
// family of bit-at-a-time LFSR-style remainder computation the retrieved
// pack uses for other link-layer checksums (RTCM's CRC24Q, exercised via
// gnssgo.Rtk_CRC24q in pkg/gnssgo/rtcm/rtcm.go's ValidateCRC, and the
// shift-register CRC in bratwurzt-rtlamr's GenPoly-driven packet check) —
// BCH division differs only in that the remainder is kept in full (48 bits)
// rather than reduced to a fixed-width checksum.
package bch

const (
	// InfoBits is the number of information bits protected per codeword.
	InfoBits = 202
	// ParityBits is the number of parity bits produced per codeword.
	ParityBits = 48
	// CodewordBits is InfoBits + ParityBits.
	CodewordBits = InfoBits + ParityBits

	// generatorPoly49 is the fixed 49-bit generator polynomial; bit 48 is
	// the implicit leading coefficient, already folded into this constant
	// per spec.md §4.2.
	generatorPoly49 uint64 = 0x1C7EB85DF3C97

	// generatorLow48 is generatorPoly49 with the implicit leading bit
	// dropped — the feedback tap pattern for a 48-bit shift-subtract
	// divider, the register width matching ParityBits exactly.
	generatorLow48 = generatorPoly49 & ((1 << ParityBits) - 1)

	parityMask = uint64(1)<<ParityBits - 1
)

// Compute returns the 48-bit parity for a 202-bit information block.
//
// info must have length InfoBits, each element 0 or 1, MSB (info[0], the
// degree-201 coefficient) first. The result has length ParityBits, MSB
// first, matching spec.md §4.2's P(x) = (M(x)·x^48) mod G(x).
//
// This is the MSB-first shift-subtract division spec.md §4.2 mandates: a
// 48-bit remainder register, shifted left once per information bit and
// XORed with the generator's low 48 bits whenever the information bit XOR
// the bit the shift displaces from the top of the register is 1 (which
// folds the x^48 multiplication into the loop).
func Compute(info []int) []int {
	if len(info) != InfoBits {
		panic("bch: info must be 202 bits")
	}

	var remainder uint64
	for _, bit := range info {
		feedback := uint64(bit&1) ^ ((remainder >> (ParityBits - 1)) & 1)
		remainder = (remainder << 1) & parityMask
		if feedback == 1 {
			remainder ^= generatorLow48
		}
	}

	parity := make([]int, ParityBits)
	for i := 0; i < ParityBits; i++ {
		shift := uint(ParityBits - 1 - i)
		parity[i] = int((remainder >> shift) & 1)
	}
	return parity
}

// Verify recomputes parity over info and reports whether it matches parity.
func Verify(info, parity []int) bool {
	if len(parity) != ParityBits {
		return false
	}
	computed := Compute(info)
	for i := range computed {
		if computed[i] != parity[i] {
			return false
		}
	}
	return true
}
