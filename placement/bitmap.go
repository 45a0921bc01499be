package placement

import "github.com/go-dmtx/dmtx/bitutil"

// Compose tiles a Wc x Hc content-area grid into a full W x H symbol bitmap,
// framing every (1+v) x (1+h_) partition with its alignment pattern: a solid
// left column, a solid bottom row, an alternating-starting-with-1 top row,
// and an alternating right column. v and h_ are the extra interior
// alignment-strip counts (symbolsize.Descriptor.V / .H_); wb, hb are each
// region's content size (Wc/(1+v), Hc/(1+h_)).
//
// Grounded on zxinggo's datamatrix/encoder.encodeLowLevel, generalized from
// "one data region per symbol" framing to the general (1+v) x (1+h_) tiling
// DMRE and the larger square sizes require.
func Compose(content *bitutil.BitMatrix, v, h, wb, hb int) *bitutil.BitMatrix {
	regionsH := v + 1
	regionsV := h + 1
	w := regionsH*wb + 2*regionsH
	ht := regionsV*hb + 2*regionsV

	out := bitutil.NewBitMatrixWithSize(w, ht)

	for vr := 0; vr < regionsV; vr++ {
		for hr := 0; hr < regionsH; hr++ {
			ox := hr * (wb + 2)
			oy := vr * (hb + 2)

			for y := 0; y < hb+2; y++ {
				out.Set(ox, oy+y)
			}
			for x := 0; x < wb+2; x++ {
				out.Set(ox+x, oy+hb+1)
			}
			for x := 0; x < wb+2; x++ {
				if x%2 == 0 {
					out.Set(ox+x, oy)
				}
			}
			for y := 0; y < hb+2; y++ {
				if y%2 == 0 {
					out.Set(ox+wb+1, oy+y)
				}
			}
		}
	}

	for vr := 0; vr < regionsV; vr++ {
		for hr := 0; hr < regionsH; hr++ {
			for r := 0; r < hb; r++ {
				for c := 0; c < wb; c++ {
					if !content.Get(hr*wb+c, vr*hb+r) {
						continue
					}
					out.Set(hr*(wb+2)+c+1, vr*(hb+2)+r+1)
				}
			}
		}
	}

	return out
}

// Decompose is the inverse of Compose: it strips alignment patterns from a
// W x H symbol bitmap, returning the Wc x Hc content area and a flag
// recording whether every alignment-pattern line (solid and alternating)
// matched the expected fixed shape. A mismatch is recorded, not raised: the
// caller decides whether to still attempt codeword extraction.
func Decompose(bitmap *bitutil.BitMatrix, v, h, wb, hb int) (content *bitutil.BitMatrix, alignmentOK bool) {
	regionsH := v + 1
	regionsV := h + 1
	alignmentOK = true

	content = bitutil.NewBitMatrixWithSize(regionsH*wb, regionsV*hb)

	for vr := 0; vr < regionsV; vr++ {
		for hr := 0; hr < regionsH; hr++ {
			ox := hr * (wb + 2)
			oy := vr * (hb + 2)

			for y := 0; y < hb+2; y++ {
				if !bitmap.Get(ox, oy+y) {
					alignmentOK = false
				}
			}
			for x := 0; x < wb+2; x++ {
				if !bitmap.Get(ox+x, oy+hb+1) {
					alignmentOK = false
				}
			}
			for x := 0; x < wb+2; x++ {
				want := x%2 == 0
				if bitmap.Get(ox+x, oy) != want {
					alignmentOK = false
				}
			}
			for y := 0; y < hb+2; y++ {
				want := y%2 == 0
				if bitmap.Get(ox+wb+1, oy+y) != want {
					alignmentOK = false
				}
			}

			for r := 0; r < hb; r++ {
				for c := 0; c < wb; c++ {
					if bitmap.Get(ox+c+1, oy+r+1) {
						content.Set(hr*wb+c, vr*hb+r)
					}
				}
			}
		}
	}

	return content, alignmentOK
}
