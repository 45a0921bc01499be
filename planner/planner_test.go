package planner

import (
	"testing"

	"github.com/go-dmtx/dmtx/encmode"
)

func TestPlanAllDigitsStaysAscii(t *testing.T) {
	switches := Plan([]byte("0123456789"), nil)
	for _, s := range switches {
		if s.Mode != encmode.Ascii {
			t.Errorf("unexpected switch to %v for an all-digit message", s.Mode)
		}
	}
}

func TestPlanUppercaseTextPrefersC40(t *testing.T) {
	switches := Plan([]byte("AIMDATAMATRIX"), nil)
	found := false
	for _, s := range switches {
		if s.Mode == encmode.C40 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a switch to C40 for a long uppercase-letter run, got %v", switches)
	}
}

func TestPlanX12PreferredForStructuredRecord(t *testing.T) {
	switches := Plan([]byte("ABCDEFGHIJ>KLMNOPQRST>UVWXYZABCD"), nil)
	found := false
	for _, s := range switches {
		if s.Mode == encmode.X12 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a switch to X12 for a long X12-native run, got %v", switches)
	}
}

func TestPlanBinaryDataPrefersBase256(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(200 + i%50)
	}
	switches := Plan(data, nil)
	found := false
	for _, s := range switches {
		if s.Mode == encmode.Base256 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a switch to Base256 for a long high-byte run, got %v", switches)
	}
}

func TestPlanRespectsEnabledModes(t *testing.T) {
	enabled := map[encmode.Mode]bool{encmode.Ascii: true, encmode.Base256: true}
	data := make([]byte, 20)
	for i := range data {
		data[i] = 'A'
	}
	switches := Plan(data, enabled)
	for _, s := range switches {
		if s.Mode != encmode.Ascii && s.Mode != encmode.Base256 {
			t.Errorf("plan used disabled mode %v", s.Mode)
		}
	}
}

func TestPlanFromNonAsciiStart(t *testing.T) {
	switches := PlanFrom([]byte("0123456789"), encmode.C40, 0, nil)
	if len(switches) == 0 {
		t.Skip("no switch needed is a valid outcome for an all-digit tail")
	}
}

func TestPlanEmptyInput(t *testing.T) {
	if switches := Plan(nil, nil); switches != nil {
		t.Errorf("expected nil plan for empty input, got %v", switches)
	}
}

// TestSwitchAwayCostMidGroupPenalty checks that abandoning a C40/Text
// group costs more once a value is pending than at a clean boundary: a
// clean boundary only needs an unlatch, but a partial group has to be
// padded out to a full group first.
func TestSwitchAwayCostMidGroupPenalty(t *testing.T) {
	for _, mode := range []encmode.Mode{encmode.C40, encmode.Text} {
		if delta, ok := switchAwayCost(mode, 0); !ok || delta != 0 {
			t.Errorf("%v pending=0: got (%d, %v), want (0, true)", mode, delta, ok)
		}
		for _, pending := range []int{1, 2} {
			if delta, ok := switchAwayCost(mode, pending); !ok || delta != 24 {
				t.Errorf("%v pending=%d: got (%d, %v), want (24, true)", mode, pending, delta, ok)
			}
		}
	}
}

// TestSwitchAwayCostX12ForbidsMidTriple checks that a partial X12 triple
// cannot be abandoned at all: unlike C40/Text, there's no way to pad a
// partial X12 triple out, so a switch mid-triple is simply illegal.
func TestSwitchAwayCostX12ForbidsMidTriple(t *testing.T) {
	if _, ok := switchAwayCost(encmode.X12, 0); !ok {
		t.Errorf("X12 pending=0 should be leaveable")
	}
	for _, pending := range []int{1, 2} {
		if _, ok := switchAwayCost(encmode.X12, pending); ok {
			t.Errorf("X12 pending=%d should forbid leaving mid-triple", pending)
		}
	}
}

// TestSwitchAwayCostEdifactTable checks the four written-state deltas
// against edifact.rs's mode_switch_cost (ceil(cost) at written==3,
// ceil(cost+3/4) otherwise), expressed here as deltas over the cost
// continueCost has already charged for the pending symbols.
func TestSwitchAwayCostEdifactTable(t *testing.T) {
	want := map[int]int{0: 0, 1: 3, 2: 6, 3: -3}
	for pending, wantDelta := range want {
		delta, ok := switchAwayCost(encmode.Edifact, pending)
		if !ok || delta != wantDelta {
			t.Errorf("Edifact pending=%d: got (%d, %v), want (%d, true)", pending, delta, ok, wantDelta)
		}
	}
}

// TestSwitchAwayCostBase256Threshold checks the two-byte length-header
// overflow charge that base256.rs's mode_switch_cost applies once a run
// passes 249 written bytes.
func TestSwitchAwayCostBase256Threshold(t *testing.T) {
	if delta, ok := switchAwayCost(encmode.Base256, base256LengthThreshold-1); !ok || delta != 0 {
		t.Errorf("pending=249: got (%d, %v), want (0, true)", delta, ok)
	}
	if delta, ok := switchAwayCost(encmode.Base256, base256LengthThreshold); !ok || delta != costAscii {
		t.Errorf("pending=250: got (%d, %v), want (%d, true)", delta, ok, costAscii)
	}
}

// TestContinueCostC40BatchesByGroup checks that C40/Text only charge
// their per-group cost once three values have accumulated, rather than
// continuously per character, matching c40.rs's step() (cost only
// increments when self.values overflows 3).
func TestContinueCostC40BatchesByGroup(t *testing.T) {
	data := []byte("ABC") // three base-set values, one group
	cost, consumed, pending, ok := continueCost(encmode.C40, data, 0, 0)
	if !ok || cost != 0 || consumed != 1 || pending != 1 {
		t.Errorf("char 0: got (%d, %d, %d, %v), want (0, 1, 1, true)", cost, consumed, pending, ok)
	}
	cost, consumed, pending, ok = continueCost(encmode.C40, data, 1, pending)
	if !ok || cost != 0 || consumed != 1 || pending != 2 {
		t.Errorf("char 1: got (%d, %d, %d, %v), want (0, 1, 2, true)", cost, consumed, pending, ok)
	}
	cost, consumed, pending, ok = continueCost(encmode.C40, data, 2, pending)
	if !ok || cost != costC40Group || consumed != 1 || pending != 0 {
		t.Errorf("char 2: got (%d, %d, %d, %v), want (%d, 1, 0, true)", cost, consumed, pending, ok, costC40Group)
	}
}

// TestContinueCostBase256CapsPending checks that the tracked run length
// saturates at base256LengthThreshold instead of growing unbounded,
// since only the threshold crossing (tested above) affects cost.
func TestContinueCostBase256CapsPending(t *testing.T) {
	data := []byte{0}
	_, _, pending, ok := continueCost(encmode.Base256, data, 0, base256LengthThreshold)
	if !ok || pending != base256LengthThreshold {
		t.Errorf("got (%d, %v), want (%d, true)", pending, ok, base256LengthThreshold)
	}
}

// TestPlanFromEdifactFreeUnlatchFavorsSwitch exercises a buffer state
// where switch-away cost depends on how many Edifact symbols are
// pending: a switch cost that ignores pending state would charge a flat
// 12 twelfths to leave Edifact regardless of buffer state, making
// continuing to encode "00" in Edifact (cost 9+9=18) look cheaper than
// switching to Ascii for a digit pair (cost 12+12=24). But at
// written==3 (3 symbols pending, one shy of a full group) the free-
// unlatch rule makes leaving actually cheaper than the raw continueCost
// charge, which switchAwayCost captures as a -3 delta: switching now
// costs -3+0+12=9, correctly beating staying (18).
func TestPlanFromEdifactFreeUnlatchFavorsSwitch(t *testing.T) {
	switches := PlanFrom([]byte("00"), encmode.Edifact, 3, nil)
	if len(switches) == 0 {
		t.Fatalf("expected a switch to Ascii for a digit pair after a free Edifact unlatch, got none")
	}
	first := switches[0]
	if first.Mode != encmode.Ascii || first.CharsRemaining != 2 {
		t.Errorf("got %v, want an immediate switch to Ascii with 2 characters remaining", switches)
	}
}
