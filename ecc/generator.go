// Package ecc implements the Data Matrix Reed-Solomon error-correction
// codec: systematic encoding via generator-polynomial division, and
// syndrome-based decoding via a Levinson-Durbin error-locator recurrence and
// a Björck-Pereyra error-value solve.
//
// Encoding is ported from jannschu/datamatrix-rs's errorcode::ecc_block
// streaming shift-and-XOR loop (original_source/src/errorcode/mod.rs).
// Decoding is ported from the same project's
// errorcode::decoding::syndrome_based module, which cites Schmidt & Fettweis,
// "Levinson-Durbin Algorithm Used For Fast BCH Decoding", for the
// error-locator recurrence and Björck & Pereyra's 1970 paper for the
// error-value solve.
package ecc

import (
	"sync"

	"github.com/go-dmtx/dmtx/gf256"
)

var (
	generatorCacheMu sync.Mutex
	generatorCache   = map[int][]byte{}
)

// generator returns the degree-ne generator polynomial's coefficients in
// descending-degree order with an implicit leading 1: g[0] is the degree-ne
// coefficient (always 1), g[1..ne] are the coefficients for degrees
// ne-1..0. Data Matrix's generator roots start at the primitive element's
// first power (generator base 1), matching the teacher's
// reedsolomon.DataMatrixField256.
//
// Results are cached: this is the "fixed table indexed by Ne" the generator
// polynomial contract calls for, populated lazily via the same
// root-multiplication teacher's reedsolomon.Encoder.buildGenerator uses,
// rather than hand-transcribed per-degree coefficient tables — DMRE adds
// nine Ne values beyond what a conventional ISO table enumerates, and a
// lazily built table can't transcribe a root, coefficient, or degree wrong.
func generator(ne int) []byte {
	generatorCacheMu.Lock()
	defer generatorCacheMu.Unlock()
	if g, ok := generatorCache[ne]; ok {
		return g
	}
	g := []byte{1}
	for i := 0; i < ne; i++ {
		g = multiplyByRoot(g, gf256.Exp(i+1))
	}
	generatorCache[ne] = g
	return g
}

// multiplyByRoot returns g(x) * (x + root), g given in descending-degree
// order. Addition and subtraction coincide in GF(256), so (x - root)
// and (x + root) are the same polynomial.
func multiplyByRoot(g []byte, root byte) []byte {
	n := len(g)
	out := make([]byte, n+1)
	for i := 0; i <= n; i++ {
		var a, b byte
		if i < n {
			a = g[i]
		}
		if i > 0 {
			b = gf256.Mul(root, g[i-1])
		}
		out[i] = gf256.Add(a, b)
	}
	return out
}
