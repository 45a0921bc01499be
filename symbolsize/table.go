// Package symbolsize holds the finite catalog of Data Matrix ECC 200 symbol
// sizes, including the ISO/IEC 21471 (DMRE) rectangular extensions, and the
// simple queries the encoder and decoder run against it.
//
// The 48-entry table is ported from zxinggo's datamatrix/decoder.versions
// table (itself transcribed from ISO/IEC 16022 Table 7 and ISO 21471:2020
// 5.5.1 Table 7); this package reshapes each entry into the content-area
// (Wc, Hc, v, h) terms the placement and mode-codec engines use directly.
package symbolsize

import "fmt"

// ecBlock mirrors one row of a version's error-correction block layout:
// count identical blocks of dataCodewords data codewords each.
type ecBlock struct {
	count         int
	dataCodewords int
}

// Descriptor is a single catalog entry: a concrete symbol size with its
// geometry and Reed–Solomon block layout.
type Descriptor struct {
	// Index is the 1-based catalog position (1-24 square, 25-30 ISO 16022
	// rectangles, 31-48 ISO 21471 DMRE rectangles).
	Index int

	W, H int // total modules, including alignment patterns
	Wc   int // content width: W - 2*(1+V)
	Hc   int // content height: H - 2*(1+H_)
	V, H_ int // extra interior alignment strip counts

	Nd int // number of data codewords
	Nb int // number of interleaved Reed-Solomon blocks
	Ne int // error-correction codewords per block

	HasPadding  bool // true if the four-module lower-right pad pattern is used
	Rectangular bool // true if W != H
	DMRE        bool // true if this is an ISO 21471 rectangular extension

	dataRegionRows, dataRegionCols int
	blocks                        []ecBlock
}

// TotalCodewords returns Nd + Nb*Ne, the full codeword vector length.
func (d *Descriptor) TotalCodewords() int { return d.Nd + d.Nb*d.Ne }

// BlockDataCodewords returns the number of data codewords carried by
// interleaved block i (0-based). Blocks may differ in size only for the
// 144x144 square symbol, which has 8 blocks of 156 and 2 of 155.
func (d *Descriptor) BlockDataCodewords(i int) int {
	idx := 0
	for _, b := range d.blocks {
		if i < idx+b.count {
			return b.dataCodewords
		}
		idx += b.count
	}
	panic(fmt.Sprintf("symbolsize: block index %d out of range (Nb=%d)", i, d.Nb))
}

// DataRegionSize returns the row/column size of a single data region (the
// alignment-framed tile the content area is partitioned into).
func (d *Descriptor) DataRegionSize() (rows, cols int) {
	return d.dataRegionRows, d.dataRegionCols
}

// ecPerBlock is the number of EC codewords carried by every block (uniform
// across all blocks of a version, even when data-codeword counts differ —
// see version 24's two block sizes).
func newDescriptor(idx, w, h, drRows, drCols, ecPerBlock int, blocks ...ecBlock) Descriptor {
	nb := 0
	nd := 0
	for _, b := range blocks {
		nb += b.count
		nd += b.count * b.dataCodewords
	}
	ne := ecPerBlock

	numRegionRows := h / (drRows + 2)
	numRegionCols := w / (drCols + 2)
	wc := numRegionCols * drCols
	hc := numRegionRows * drRows

	diff := wc*hc - 8*(nd+nb*ne)
	hasPadding := diff == 4
	if diff != 0 && diff != 4 {
		panic(fmt.Sprintf("symbolsize: descriptor %d fails the Wc*Hc invariant (diff=%d)", idx, diff))
	}

	return Descriptor{
		Index:          idx,
		W:              w,
		H:              h,
		Wc:             wc,
		Hc:             hc,
		V:              numRegionCols - 1,
		H_:             numRegionRows - 1,
		Nd:             nd,
		Nb:             nb,
		Ne:             ne,
		HasPadding:     hasPadding,
		Rectangular:    w != h,
		DMRE:           idx >= 31,
		dataRegionRows: drRows,
		dataRegionCols: drCols,
		blocks:         blocks,
	}
}

// All is the full 48-entry catalog, ordered by Index (ascending Nd within
// each shape family, matching ISO/IEC 16022 Table 7 and ISO 21471 Table 7).
var All = [48]Descriptor{
	// Square symbols
	newDescriptor(1, 10, 10, 8, 8, 5, ecBlock{1, 3}),
	newDescriptor(2, 12, 12, 10, 10, 7, ecBlock{1, 5}),
	newDescriptor(3, 14, 14, 12, 12, 10, ecBlock{1, 8}),
	newDescriptor(4, 16, 16, 14, 14, 12, ecBlock{1, 12}),
	newDescriptor(5, 18, 18, 16, 16, 14, ecBlock{1, 18}),
	newDescriptor(6, 20, 20, 18, 18, 18, ecBlock{1, 22}),
	newDescriptor(7, 22, 22, 20, 20, 20, ecBlock{1, 30}),
	newDescriptor(8, 24, 24, 22, 22, 24, ecBlock{1, 36}),
	newDescriptor(9, 26, 26, 24, 24, 28, ecBlock{1, 44}),
	newDescriptor(10, 32, 32, 14, 14, 36, ecBlock{1, 62}),
	newDescriptor(11, 36, 36, 16, 16, 42, ecBlock{1, 86}),
	newDescriptor(12, 40, 40, 18, 18, 48, ecBlock{1, 114}),
	newDescriptor(13, 44, 44, 20, 20, 56, ecBlock{1, 144}),
	newDescriptor(14, 48, 48, 22, 22, 68, ecBlock{1, 174}),
	newDescriptor(15, 52, 52, 24, 24, 42, ecBlock{2, 102}),
	newDescriptor(16, 64, 64, 14, 14, 56, ecBlock{2, 140}),
	newDescriptor(17, 72, 72, 16, 16, 36, ecBlock{4, 92}),
	newDescriptor(18, 80, 80, 18, 18, 48, ecBlock{4, 114}),
	newDescriptor(19, 88, 88, 20, 20, 56, ecBlock{4, 144}),
	newDescriptor(20, 96, 96, 22, 22, 68, ecBlock{4, 174}),
	newDescriptor(21, 104, 104, 24, 24, 56, ecBlock{6, 136}),
	newDescriptor(22, 120, 120, 18, 18, 68, ecBlock{6, 175}),
	newDescriptor(23, 132, 132, 20, 20, 62, ecBlock{8, 163}),
	newDescriptor(24, 144, 144, 22, 22, 62, ecBlock{8, 156}, ecBlock{2, 155}),

	// Rectangular symbols (ISO/IEC 16022)
	newDescriptor(25, 18, 8, 6, 16, 7, ecBlock{1, 5}),
	newDescriptor(26, 32, 8, 6, 14, 11, ecBlock{1, 10}),
	newDescriptor(27, 26, 12, 10, 24, 14, ecBlock{1, 16}),
	newDescriptor(28, 36, 12, 10, 16, 18, ecBlock{1, 22}),
	newDescriptor(29, 36, 16, 14, 16, 24, ecBlock{1, 32}),
	newDescriptor(30, 48, 16, 14, 22, 28, ecBlock{1, 49}),

	// ISO 21471:2020 DMRE rectangular extensions
	newDescriptor(31, 48, 8, 6, 22, 15, ecBlock{1, 18}),
	newDescriptor(32, 64, 8, 6, 14, 18, ecBlock{1, 24}),
	newDescriptor(33, 80, 8, 6, 18, 22, ecBlock{1, 32}),
	newDescriptor(34, 96, 8, 6, 22, 28, ecBlock{1, 38}),
	newDescriptor(35, 120, 8, 6, 18, 32, ecBlock{1, 49}),
	newDescriptor(36, 144, 8, 6, 22, 36, ecBlock{1, 63}),
	newDescriptor(37, 64, 12, 10, 14, 27, ecBlock{1, 43}),
	newDescriptor(38, 88, 12, 10, 20, 36, ecBlock{1, 64}),
	newDescriptor(39, 64, 16, 14, 14, 36, ecBlock{1, 62}),
	newDescriptor(40, 36, 20, 18, 16, 28, ecBlock{1, 44}),
	newDescriptor(41, 44, 20, 18, 20, 34, ecBlock{1, 56}),
	newDescriptor(42, 64, 20, 18, 14, 42, ecBlock{1, 84}),
	newDescriptor(43, 48, 22, 20, 22, 38, ecBlock{1, 72}),
	newDescriptor(44, 48, 24, 22, 22, 41, ecBlock{1, 80}),
	newDescriptor(45, 64, 24, 22, 14, 46, ecBlock{1, 108}),
	newDescriptor(46, 40, 26, 24, 18, 38, ecBlock{1, 70}),
	newDescriptor(47, 48, 26, 24, 22, 42, ecBlock{1, 90}),
	newDescriptor(48, 64, 26, 24, 14, 50, ecBlock{1, 118}),
}

// ByDimensions returns the Descriptor whose total W x H matches, used by the
// decoder to infer the symbol from the pixel buffer's dimensions.
func ByDimensions(w, h int) (*Descriptor, bool) {
	for i := range All {
		if All[i].W == w && All[i].H == h {
			return &All[i], true
		}
	}
	return nil, false
}

// MaxInputCapacity is the most input bytes this descriptor's data capacity
// could ever hold, achieved when every byte pairs up as an ASCII digit pair
// (2 source bytes per codeword). This is also where the one documented ISO
// table typo surfaces: naive transcription of the Rect 20x64 entry lists a
// maximum of 186, but 2*Nd for that descriptor (Nd=84) is 168; deriving the
// value instead of transcribing it sidesteps the typo rather than requiring
// a special case.
func (d *Descriptor) MaxInputCapacity() int { return 2 * d.Nd }

// MinInputCapacity is the fewest input bytes that can fill this descriptor's
// data capacity, the worst case being extended ASCII (Upper Shift + value,
// 2 codewords per source byte).
func (d *Descriptor) MinInputCapacity() int { return d.Nd / 2 }
