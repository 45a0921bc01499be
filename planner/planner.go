// Package planner computes a minimal-cost sequence of encodation-mode
// switches for a Data Matrix message, per ISO/IEC 16022 §5.2.1's permission
// to choose when to change modes freely as long as the chosen sequence
// round-trips losslessly.
//
// The search is grounded on the shape of
// original_source/src/encodation/planner/{shortest_path,generic,frac}.rs:
// a fixed-denominator fractional cost (denominator 12, see frac.rs) and a
// breadth-first/shortest-path search forking a plan into every other mode
// at each input character. This port simplifies the search from the
// original's per-mode StepResult/"unbeatable" step machinery (a
// performance optimization that prunes forks the search would reject
// anyway) into a generalized Dijkstra search over (mode, input position,
// pending-buffer state) states ordered by the lexicographic key (cost,
// switch count) — the same minimum the original's breadth-first frontier
// converges to, reached by a different, standard-library-friendly route.
// The pending-buffer state matters because C40/Text/X12/Edifact pack
// several input values per codeword group: a mode switch considered
// mid-group costs more than one considered at a clean group boundary
// (the group has to be padded out, or in X12's case can't be abandoned at
// all), exactly as original_source/src/encodation/planner/{c40,edifact,
// x12}.rs's mode_switch_cost functions compute from their own `values`/
// `written` fields. See DESIGN.md for the reasoning.
package planner

import (
	"container/heap"

	"github.com/go-dmtx/dmtx/encmode"
)

// Switch records a planned encodation-mode change: Mode is switched to
// when exactly CharsRemaining input characters are left to encode.
type Switch struct {
	CharsRemaining int
	Mode           encmode.Mode
}

// Costs are expressed in twelfths of a codeword (the original's Frac
// denominator, see original_source/src/encodation/planner/frac.rs), so
// that Edifact's 3/4-codeword-per-symbol and C40/Text's 2/3-codeword-per-
// value costs stay exact integers throughout the search.
const (
	costAscii     = 12 // 1 codeword
	costDigitPair = 12 // 1 codeword for 2 digits
	costHighByte  = 24 // 2 codewords
	costC40Group  = 24 // 2 codewords per completed group of 3 values
	costX12Char   = 8  // 2/3 codeword
	costEdifact   = 9  // 3/4 codeword
	costBase256   = 12 // 1 codeword/byte

	switchIntoAscii   = 0
	switchIntoBase256 = 24 // generic latch (12) + length-byte init (12)
	switchIntoDefault = 12 // generic latch only

	base256LengthThreshold = 250 // run length at which the header grows to two bytes
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// switchIntoCost reports the cost of latching into target, charged once,
// in addition to whatever continueCost(target, ...) then charges for the
// first character consumed under the new mode. It does not depend on the
// mode being left; only Base256's extra length-byte init cost varies by
// target, per original_source/src/encodation/planner/base256.rs's
// with_written.
func switchIntoCost(target encmode.Mode) int {
	switch target {
	case encmode.Ascii:
		return switchIntoAscii
	case encmode.Base256:
		return switchIntoBase256
	default:
		return switchIntoDefault
	}
}

// switchAwayCost reports the extra cost (beyond what has already been
// charged by continueCost) of leaving mode right now, given pending: the
// count of input values already folded into an as-yet-unflushed group
// (C40/Text: 0-2 pending C40 values; X12: 0-2 pending triple values;
// Edifact: 0-3 pending symbols; Base256: the run's data-byte count so
// far, saturating at base256LengthThreshold). It reports ok=false when
// mode cannot be left at all in this state — X12 forbids abandoning a
// partial triple, per x12.rs's mode_switch_cost returning None.
//
// The per-mode deltas are ported from the mode_switch_cost functions in
// original_source/src/encodation/planner/{c40,edifact,x12,base256,
// ascii}.rs: leaving mid-group must pay to pad the group out to a clean
// boundary (C40/Text: 2 more codewords; Edifact: ceil() rounds the
// fractional 3/4-per-symbol cost up to the next whole codeword) before
// the unlatch itself is paid for by switchIntoCost/continueCost on the
// other side of the switch.
func switchAwayCost(mode encmode.Mode, pending int) (delta int, ok bool) {
	switch mode {
	case encmode.Ascii:
		return 0, true
	case encmode.C40, encmode.Text:
		if pending == 0 {
			return 0, true
		}
		return 24, true // pad the pending 1-2 values out to a full group
	case encmode.X12:
		if pending == 0 {
			return 0, true
		}
		return 0, false // can't unlatch mid-triple
	case encmode.Edifact:
		// written=0..3 -> ceil(cost) vs ceil(cost+3/4) deltas, in twelfths,
		// relative to the cost already charged by continueCost for the
		// pending symbols (which is what the caller adds this delta to).
		switch pending {
		case 0:
			return 0, true
		case 1:
			return 3, true
		case 2:
			return 6, true
		case 3:
			return -3, true // the group is one symbol from a free unlatch
		default:
			return 0, true
		}
	case encmode.Base256:
		if pending >= base256LengthThreshold {
			return costAscii, true // length header grows from one byte to two
		}
		return 0, true
	default:
		return 0, true
	}
}

// continueCost reports the cost (in twelfths of a codeword) and number of
// input characters consumed by continuing one more step in mode at
// data[pos], given pendingIn (mode's buffered/partial-group state coming
// in, as described on switchAwayCost), and the resulting pendingOut. It
// reports ok=false if mode cannot encode data[pos] at all (X12 and
// Edifact are restricted to a character subset; every other mode accepts
// any byte).
//
// C40 and Text charge their per-group cost only once a group of three
// values completes (ported from c40.rs's step(), which only increments
// cost when self.values overflows 3), rather than continuously per
// character: this batching is what keeps switchAwayCost's mid-group
// delta from double-counting a group's cost.
func continueCost(mode encmode.Mode, data []byte, pos, pendingIn int) (cost, consumed, pendingOut int, ok bool) {
	ch := data[pos]
	switch mode {
	case encmode.Ascii:
		if pos+1 < len(data) && isDigit(ch) && isDigit(data[pos+1]) {
			return costDigitPair, 2, 0, true
		}
		if ch <= 127 {
			return costAscii, 1, 0, true
		}
		return costHighByte, 1, 0, true
	case encmode.C40:
		return continueC40Like(pendingIn, encmode.ValSizeC40(ch))
	case encmode.Text:
		return continueC40Like(pendingIn, encmode.ValSizeText(ch))
	case encmode.X12:
		if !encmode.IsNativeX12(ch) {
			return 0, 0, 0, false
		}
		return costX12Char, 1, (pendingIn + 1) % 3, true
	case encmode.Edifact:
		if !encmode.IsEdifactEncodable(ch) {
			return 0, 0, 0, false
		}
		return costEdifact, 1, (pendingIn + 1) % 4, true
	case encmode.Base256:
		pendingOut := pendingIn + 1
		if pendingOut > base256LengthThreshold {
			pendingOut = base256LengthThreshold
		}
		return costBase256, 1, pendingOut, true
	default:
		return 0, 0, 0, false
	}
}

func continueC40Like(pendingIn, valSize int) (cost, consumed, pendingOut int, ok bool) {
	values := pendingIn + valSize
	if values >= 3 {
		return costC40Group, 1, values - 3, true
	}
	return 0, 1, values, true
}

// allModes lists every encodation mode in planner tie-break order.
var allModes = []encmode.Mode{encmode.Ascii, encmode.Base256, encmode.Edifact, encmode.X12, encmode.C40, encmode.Text}

type stateKey struct {
	mode    encmode.Mode
	pos     int
	pending int
}

type distEntry struct {
	cost        int
	numSwitches int
	prev        stateKey
	prevValid   bool
	viaSwitch   bool // true if the edge into this state was a mode switch
}

type queueItem struct {
	key         stateKey
	cost        int
	numSwitches int
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].numSwitches < pq[j].numSwitches
}
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Plan computes the minimal-cost mode-switch sequence for encoding data,
// starting in Ascii mode with no pending buffer state, restricted to the
// modes in enabled (nil means all six modes are allowed).
func Plan(data []byte, enabled map[encmode.Mode]bool) []Switch {
	return PlanFrom(data, encmode.Ascii, 0, enabled)
}

// PlanFrom computes the minimal-cost mode-switch sequence for encoding
// data starting in startMode with startPending buffered values already
// folded into startMode's in-progress group (see switchAwayCost), and
// restricted to the modes in enabled (nil means all six modes are
// allowed). This is used to re-plan mid-message, after a mode codec has
// already consumed some input under an earlier plan: the mode codecs
// pass their own buffer length (c40text.go's buf, edifact.go's symbols,
// base256.go's run length so far) as startPending so the re-plan's first
// switch-away decision reflects the buffer's real state instead of
// assuming a fresh start.
func PlanFrom(data []byte, startMode encmode.Mode, startPending int, enabled map[encmode.Mode]bool) []Switch {
	if len(data) == 0 {
		return nil
	}
	isEnabled := func(m encmode.Mode) bool { return enabled == nil || enabled[m] }

	dist := map[stateKey]distEntry{}
	start := stateKey{mode: startMode, pos: 0, pending: startPending}
	dist[start] = distEntry{cost: 0, numSwitches: 0}

	pq := &priorityQueue{{key: start, cost: 0, numSwitches: 0}}
	heap.Init(pq)

	relax := func(from stateKey, to stateKey, costDelta int, switched bool) {
		d := dist[from]
		newCost := d.cost + costDelta
		newSwitches := d.numSwitches
		if switched {
			newSwitches++
		}
		cur, seen := dist[to]
		if !seen || newCost < cur.cost || (newCost == cur.cost && newSwitches < cur.numSwitches) {
			dist[to] = distEntry{cost: newCost, numSwitches: newSwitches, prev: from, prevValid: true, viaSwitch: switched}
			heap.Push(pq, queueItem{key: to, cost: newCost, numSwitches: newSwitches})
		}
	}

	for pq.Len() > 0 {
		top := heap.Pop(pq).(queueItem)
		cur := dist[top.key]
		if top.cost != cur.cost || top.numSwitches != cur.numSwitches {
			continue // stale entry
		}
		pos := top.key.pos
		if pos >= len(data) {
			continue // terminal, no outgoing edges
		}
		mode := top.key.mode
		pending := top.key.pending

		if cost, consumed, pendingOut, ok := continueCost(mode, data, pos, pending); ok {
			relax(top.key, stateKey{mode: mode, pos: pos + consumed, pending: pendingOut}, cost, false)
		}

		awayCost, canLeave := switchAwayCost(mode, pending)
		if !canLeave {
			continue
		}
		for _, other := range allModes {
			if other == mode || !isEnabled(other) {
				continue
			}
			stepCost, consumed, pendingOut, ok := continueCost(other, data, pos, 0)
			if !ok {
				continue
			}
			edgeCost := awayCost + switchIntoCost(other) + stepCost
			relax(top.key, stateKey{mode: other, pos: pos + consumed, pending: pendingOut}, edgeCost, true)
		}
	}

	// Map iteration order is randomized; scan candidates in a fixed mode
	// order (matching allModes, then ascending pending) so ties resolve
	// the same way on every run instead of depending on map iteration.
	best, bestFound := stateKey{}, false
	for _, mode := range allModes {
		if !isEnabled(mode) {
			continue
		}
		for pending := 0; pending <= base256LengthThreshold; pending++ {
			key := stateKey{mode: mode, pos: len(data), pending: pending}
			d, ok := dist[key]
			if !ok {
				continue
			}
			if !bestFound {
				best, bestFound = key, true
				continue
			}
			bd := dist[best]
			if d.cost < bd.cost || (d.cost == bd.cost && d.numSwitches < bd.numSwitches) {
				best = key
			}
		}
	}
	if !bestFound {
		return nil
	}

	// Reconstruct the path from best back to start, collecting switches.
	var switches []Switch
	k := best
	for {
		d := dist[k]
		if !d.prevValid {
			break
		}
		if d.viaSwitch {
			switches = append(switches, Switch{CharsRemaining: len(data) - d.prev.pos, Mode: k.mode})
		}
		k = d.prev
	}
	// switches were collected walking backward; reverse them.
	for i, j := 0, len(switches)-1; i < j; i, j = i+1, j-1 {
		switches[i], switches[j] = switches[j], switches[i]
	}
	return switches
}
