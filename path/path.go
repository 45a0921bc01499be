// Package path traces the outline of a bitmap as a sequence of relative
// vector-drawing instructions, suitable for emission as an SVG, PDF, or
// EPS path using the even-odd fill rule.
//
// Grounded on original_source/src/placement/path.rs: the bitmap's pixel
// grid is modeled as a graph of unit grid edges (each filled pixel
// contributes a boundary edge wherever it touches an unfilled neighbor,
// or the bitmap's own border), decomposed into Eulerian circuits via
// Hierholzer's algorithm, then compressed into runs of collinear moves.
// There is no third-party graph library in the teacher or the rest of
// the example pack sized for a problem this small (at most a few hundred
// vertices per symbol) and worth pulling in over a direct port; see
// DESIGN.md.
package path

// Segment is one instruction of a traced outline, expressed as a
// relative move (an SVG-style "m"/"h"/"v"/"z" primitive).
type Segment struct {
	Kind Kind
	DX   int // for Move and Horizontal
	DY   int // for Move and Vertical ("DX" unused for Vertical)
}

// Kind identifies which relative drawing primitive a Segment represents.
type Kind int

const (
	// Move starts a new subpath without drawing, relative to the
	// current point (DX, DY).
	Move Kind = iota
	// Horizontal draws a horizontal line of relative length DX.
	Horizontal
	// Vertical draws a vertical line of relative length DY.
	Vertical
	// Close closes the current subpath. May occur more than once.
	Close
)

// Bitmap is the minimal pixel-grid surface path.Trace needs: a rectangle
// of booleans addressed (x, y) with the origin at the top left, matching
// bitutil.BitMatrix's coordinate convention.
type Bitmap interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// Trace computes the outline of bm as a sequence of relative path
// segments. The first segment of the returned slice is never a Move: a
// path implicitly begins at the origin, matching the original's
// convention that callers already know their own starting position.
func Trace(bm Bitmap) []Segment {
	w, h := bm.Width(), bm.Height()
	g := newGraph(bm, w, h)

	var micro []microStep
	var alternatives []branchPoint
	insert := 0

	for {
	euler:
		for {
			var localLoop []microStep
			insertPos := insert

			g.removeEdge(g.pos)
			start := g.pos.startNode()
			localLoop = append(localLoop, microStep{step: true, n: g.pos.endNode()})
			insert++

			for {
				pos := g.pos
				if g.stepAndHadAlternatives() {
					alternatives = append(alternatives, branchPoint{insert: insert, pos: pos})
				}
				end := g.pos.endNode()
				localLoop = append(localLoop, microStep{step: true, n: end})
				if end == start {
					break
				}
				insert++
			}

			micro = spliceMicroSteps(micro, insertPos, localLoop)

			// Scan front to back, the order the original's alternatives
			// vector would be drained in: the first branch point that still
			// has a step available wins, and the rest are discarded even if
			// unexamined (draining the whole backlog, matching the
			// original's Vec::drain(0..) over the full alternatives list).
			resumed := false
			for _, a := range alternatives {
				if newPos, ok := g.canStep(a.pos); ok {
					g.pos = newPos
					insert = a.insert
					resumed = true
					break
				}
			}
			alternatives = nil
			if resumed {
				continue euler
			}
			break
		}

		if pos, ok := g.edgeLeft(); ok {
			micro = append(micro, microStep{step: false, n: pos.startNode()})
			g.pos = pos
			insert = len(micro)
			continue
		}
		break
	}

	return compress(micro, w)
}

type microStep struct {
	step bool // true: Step(n); false: Jump(n)
	n    int
}

type branchPoint struct {
	insert int
	pos    position
}

func spliceMicroSteps(steps []microStep, at int, insert []microStep) []microStep {
	out := make([]microStep, 0, len(steps)+len(insert))
	out = append(out, steps[:at]...)
	out = append(out, insert...)
	out = append(out, steps[at:]...)
	return out
}

func compress(microSteps []microStep, width int) []Segment {
	var segments []Segment
	posI, posJ := 0, 0
	ij := func(n int) (int, int) { return n / (width + 1), n % (width + 1) }

	type wip struct {
		kind Kind
		val  int
		set  bool
	}
	var cur wip

	flush := func() {
		if cur.set {
			if cur.kind == Horizontal {
				segments = append(segments, Segment{Kind: Horizontal, DX: cur.val})
			} else {
				segments = append(segments, Segment{Kind: Vertical, DY: cur.val})
			}
			cur = wip{}
		}
	}

	for _, m := range microSteps {
		if m.step {
			i, j := ij(m.n)
			switch {
			case cur.set && cur.kind == Horizontal && i == posI:
				cur.val += j - posJ
			case cur.set && cur.kind == Vertical && j == posJ:
				cur.val += i - posI
			default:
				flush()
				if i == posI {
					cur = wip{kind: Horizontal, val: j - posJ, set: true}
				} else {
					cur = wip{kind: Vertical, val: i - posI, set: true}
				}
			}
			posI, posJ = i, j
		} else {
			cur = wip{}
			segments = append(segments, Segment{Kind: Close})
			i, j := ij(m.n)
			segments = append(segments, Segment{Kind: Move, DX: j - posJ, DY: i - posI})
			posI, posJ = i, j
		}
	}
	segments = append(segments, Segment{Kind: Close})
	return segments
}
