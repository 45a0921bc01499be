package ecc

import "github.com/go-dmtx/dmtx/gf256"

// Encode computes the interleaved Reed-Solomon error-correction codewords
// for data, split across nb blocks of ne codewords each (block i's data is
// every nb-th codeword starting at index i — the interleaved view ISO/IEC
// 16022 §5.7.3 specifies for multi-block symbols). The returned slice has
// length nb*ne; its layout already matches the final symbol's ECC region
// (block, block+nb, block+2*nb, ...).
func Encode(data []byte, nb, ne int) []byte {
	g := generator(ne)
	out := make([]byte, nb*ne)
	register := make([]byte, ne+1)
	for block := 0; block < nb; block++ {
		for i := range register {
			register[i] = 0
		}
		for i := block; i < len(data); i += nb {
			shiftAndXOR(data[i], g, register)
		}
		for i, j := 0, block; i < ne; i, j = i+1, j+nb {
			out[j] = register[i]
		}
	}
	return out
}

// shiftAndXOR advances the ecc-register by one data codeword. It implements
// polynomial division of data(x)*x^ne by g(x), keeping only the remainder,
// via a streaming shift-and-XOR loop equivalent to synchronous LFSR
// division: register always holds the current remainder.
func shiftAndXOR(a byte, g, register []byte) {
	k := gf256.Add(register[0], a)
	last := len(g) - 1
	for j := 0; j < last; j++ {
		register[j] = gf256.Add(register[j+1], gf256.Mul(k, g[j+1]))
	}
}
