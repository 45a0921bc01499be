package path

import "testing"

type boolBitmap struct {
	width, height int
	bits          []bool
}

func (b *boolBitmap) Width() int  { return b.width }
func (b *boolBitmap) Height() int { return b.height }
func (b *boolBitmap) Get(x, y int) bool {
	return b.bits[y*b.width+x]
}

func segEq(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTraceMini2x2OneEuler(t *testing.T) {
	bm := &boolBitmap{width: 2, height: 2, bits: []bool{true, false, true, true}}
	got := Trace(bm)
	want := []Segment{
		{Kind: Horizontal, DX: 1},
		{Kind: Vertical, DY: 1},
		{Kind: Horizontal, DX: 1},
		{Kind: Vertical, DY: 1},
		{Kind: Horizontal, DX: -2},
		{Kind: Close},
	}
	if !segEq(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTraceMini2x3OneEuler(t *testing.T) {
	bm := &boolBitmap{width: 3, height: 2, bits: []bool{true, false, true, true, true, false}}
	got := Trace(bm)
	want := []Segment{
		{Kind: Horizontal, DX: 1},
		{Kind: Vertical, DY: 1},
		{Kind: Horizontal, DX: 2},
		{Kind: Vertical, DY: -1},
		{Kind: Horizontal, DX: -1},
		{Kind: Vertical, DY: 2},
		{Kind: Horizontal, DX: -2},
		{Kind: Close},
	}
	if !segEq(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTraceMini3x2TwoEuler(t *testing.T) {
	bm := &boolBitmap{width: 2, height: 3, bits: []bool{true, true, false, false, false, true}}
	got := Trace(bm)
	want := []Segment{
		{Kind: Horizontal, DX: 2},
		{Kind: Vertical, DY: 1},
		{Kind: Horizontal, DX: -2},
		{Kind: Close},
		{Kind: Move, DX: 1, DY: 2},
		{Kind: Horizontal, DX: 1},
		{Kind: Vertical, DY: 1},
		{Kind: Horizontal, DX: -1},
		{Kind: Close},
	}
	if !segEq(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTraceSingleFilledPixel(t *testing.T) {
	bm := &boolBitmap{width: 1, height: 1, bits: []bool{true}}
	got := Trace(bm)
	if len(got) == 0 || got[len(got)-1].Kind != Close {
		t.Errorf("expected a non-empty path ending in Close, got %+v", got)
	}
}

func TestTraceEmptyBitmapProducesOnlyClose(t *testing.T) {
	bm := &boolBitmap{width: 2, height: 2, bits: []bool{false, false, false, false}}
	got := Trace(bm)
	want := []Segment{{Kind: Close}}
	if !segEq(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
