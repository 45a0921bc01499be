// Package placement implements the ECC 200 module placement algorithm
// (ISO/IEC 16022 Annex F/M): the serpentine "utah" traversal that assigns
// each codeword's eight bits to eight module positions in the content area,
// the four corner special cases, and the alignment-pattern composition that
// turns a content area into a full symbol bitmap (and back).
//
// Ported from zxinggo's datamatrix/encoder.DefaultPlacement (the forward
// direction) and datamatrix/decoder.readMappingMatrix (the inverse), unified
// here into a single traversal both directions share — so the two can never
// silently drift apart, and "decode(place(codewords)) == codewords" is a
// structural property rather than something two hand-written walks have to
// agree on by coincidence.
package placement

// CodewordPlacement is one codeword's eight module positions in the content
// area, most-significant bit first (position[0] is bit 7).
type CodewordPlacement struct {
	Index     int // codeword index in the symbol's codeword vector
	Positions [8][2]int // [row, col] per bit, MSB first
}

// Traverse computes the full serpentine walk over a Hc x Wc content area and
// returns one CodewordPlacement per codeword the traversal visits, in
// codeword order. Both placement (encode) and extraction (decode) replay
// this same sequence; it depends only on the content-area dimensions.
func Traverse(hc, wc int) []CodewordPlacement {
	var out []CodewordPlacement
	visited := make([][]bool, hc)
	for i := range visited {
		visited[i] = make([]bool, wc)
	}

	emit := func(row, col int) {
		out = append(out, utah(row, col, hc, wc))
	}
	emitCorner := func(positions [8][2]int) {
		out = append(out, CodewordPlacement{Positions: resolveAll(positions, hc, wc)})
	}

	row, col := 4, 0
	for {
		if row == hc && col == 0 {
			emitCorner(corner1(hc, wc))
		}
		if row == hc-2 && col == 0 && wc%4 != 0 {
			emitCorner(corner2(hc, wc))
		}
		if row == hc-2 && col == 0 && wc%8 == 4 {
			emitCorner(corner3(hc, wc))
		}
		if row == hc+4 && col == 2 && wc%8 == 0 {
			emitCorner(corner4(hc, wc))
		}

		// Diagonal sweep up-right.
		for {
			if row < hc && col >= 0 && !markVisited(visited, row, col, hc, wc) {
				emit(row, col)
			}
			row -= 2
			col += 2
			if row < 0 || col >= wc {
				break
			}
		}
		row++
		col += 3

		// Diagonal sweep down-left.
		for {
			if row >= 0 && col < wc && !markVisited(visited, row, col, hc, wc) {
				emit(row, col)
			}
			row += 2
			col -= 2
			if row >= hc || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= hc && col >= wc {
			break
		}
	}

	for i := range out {
		out[i].Index = i
	}
	return out
}

// markVisited records (row, col) as visited (after wraparound resolution)
// and reports whether it already was.
func markVisited(visited [][]bool, row, col, hc, wc int) bool {
	r, c := resolve(row, col, hc, wc)
	was := visited[r][c]
	visited[r][c] = true
	return was
}

// resolve applies the wraparound rule for a single (row, col) pair.
func resolve(row, col, hc, wc int) (int, int) {
	if row < 0 {
		row += hc
		col += 4 - ((hc + 4) % 8)
	}
	if col < 0 {
		col += wc
		row += 4 - ((wc + 4) % 8)
	}
	if row >= hc {
		row -= hc
	}
	if col >= wc {
		col -= wc
	}
	return row, col
}

func resolveAll(positions [8][2]int, hc, wc int) [8][2]int {
	var out [8][2]int
	for i, p := range positions {
		r, c := resolve(p[0], p[1], hc, wc)
		out[i] = [2]int{r, c}
	}
	return out
}

// utah returns the standard L-shaped ("utah") eight-position placement whose
// lower-right corner nominally sits at (row, col).
func utah(row, col, hc, wc int) CodewordPlacement {
	return CodewordPlacement{Positions: resolveAll([8][2]int{
		{row - 2, col - 2},
		{row - 2, col - 1},
		{row - 1, col - 2},
		{row - 1, col - 1},
		{row - 1, col},
		{row, col - 2},
		{row, col - 1},
		{row, col},
	}, hc, wc)}
}

func corner1(hc, wc int) [8][2]int {
	return [8][2]int{
		{hc - 1, 0}, {hc - 1, 1}, {hc - 1, 2},
		{0, wc - 2}, {0, wc - 1}, {1, wc - 1}, {2, wc - 1}, {3, wc - 1},
	}
}

func corner2(hc, wc int) [8][2]int {
	return [8][2]int{
		{hc - 3, 0}, {hc - 2, 0}, {hc - 1, 0},
		{0, wc - 4}, {0, wc - 3}, {0, wc - 2}, {0, wc - 1}, {1, wc - 1},
	}
}

func corner3(hc, wc int) [8][2]int {
	return [8][2]int{
		{hc - 3, 0}, {hc - 2, 0}, {hc - 1, 0},
		{0, wc - 2}, {0, wc - 1}, {1, wc - 1}, {2, wc - 1}, {3, wc - 1},
	}
}

func corner4(hc, wc int) [8][2]int {
	return [8][2]int{
		{hc - 1, 0}, {hc - 1, wc - 1},
		{0, wc - 3}, {0, wc - 2}, {0, wc - 1},
		{1, wc - 3}, {1, wc - 2}, {1, wc - 1},
	}
}
