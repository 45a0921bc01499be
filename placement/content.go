package placement

import "github.com/go-dmtx/dmtx/bitutil"

// Place lays codewords into a freshly built Wc x Hc content-area BitMatrix
// using the traversal order, then sets the lower-right 2x2 padding pattern
// if hasPadding is true (modules (Hc-2,Wc-2) and (Hc-1,Wc-1) set, the other
// two left unset).
func Place(codewords []byte, hc, wc int, hasPadding bool) *bitutil.BitMatrix {
	grid := bitutil.NewBitMatrixWithSize(wc, hc)
	for _, cw := range Traverse(hc, wc) {
		var b byte
		if cw.Index < len(codewords) {
			b = codewords[cw.Index]
		}
		for bit, pos := range cw.Positions {
			if b&(1<<uint(7-bit)) != 0 {
				grid.Set(pos[1], pos[0])
			}
		}
	}
	if hasPadding {
		grid.Set(wc-2, hc-2)
		grid.Set(wc-1, hc-1)
	}
	return grid
}

// Extract reads codewords back out of a Wc x Hc content-area BitMatrix using
// the same traversal order Place used. It never errors: an invalid bitmap
// simply yields codewords that will fail Reed–Solomon decoding downstream,
// consistent with the component's "no error on validation failure" contract
// (the caller owns what to do about wrong data).
func Extract(grid *bitutil.BitMatrix, totalCodewords int) []byte {
	hc, wc := grid.Height(), grid.Width()
	out := make([]byte, totalCodewords)
	for _, cw := range Traverse(hc, wc) {
		if cw.Index >= totalCodewords {
			continue
		}
		var b byte
		for _, pos := range cw.Positions {
			b <<= 1
			if grid.Get(pos[1], pos[0]) {
				b |= 1
			}
		}
		out[cw.Index] = b
	}
	return out
}

// CheckPadding reports whether the lower-right 2x2 padding pattern in grid
// matches the expected fixed shape (the two named modules set, the other
// two unset). Callers validate this only when the descriptor says padding
// is present.
func CheckPadding(grid *bitutil.BitMatrix) bool {
	hc, wc := grid.Height(), grid.Width()
	return grid.Get(wc-2, hc-2) && grid.Get(wc-1, hc-1) &&
		!grid.Get(wc-1, hc-2) && !grid.Get(wc-2, hc-1)
}
