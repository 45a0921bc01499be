package planner

import "github.com/go-dmtx/dmtx/encmode"

// ModeSwitcher implements encmode.Switcher by re-running PlanFrom over the
// context's remaining input every time a mode codec reaches a natural
// switch boundary, and acting on the plan's first entry only if it calls
// for switching right now (not further ahead in the input). Re-planning
// at every boundary, rather than computing one plan up front and
// following it blindly, lets a later mode's encode-time specifics (for
// instance Base256's length-prefix overhead once the actual switch
// position is known) feed back into the cost model; the original
// project's planner is invoked the same way, from inside each mode's own
// step loop.
type ModeSwitcher struct {
	enabled map[encmode.Mode]bool
}

// NewModeSwitcher builds a ModeSwitcher restricted to the given mode set
// (nil enables all six modes).
func NewModeSwitcher(enabled map[encmode.Mode]bool) *ModeSwitcher {
	return &ModeSwitcher{enabled: enabled}
}

// MaybeSwitchMode implements encmode.Switcher. pending is forwarded into
// the re-plan as the starting state's buffered/partial-group count, so
// the search's first switch-away decision is priced against the mode
// codec's real buffer state rather than an assumed-fresh start.
func (s *ModeSwitcher) MaybeSwitchMode(ctx *encmode.Context, pending int) bool {
	rest := ctx.Rest()
	if len(rest) == 0 {
		return false
	}
	switches := PlanFrom(rest, ctx.Mode, pending, s.enabled)
	if len(switches) == 0 {
		return false
	}
	first := switches[0]
	if first.CharsRemaining != len(rest) || first.Mode == ctx.Mode {
		return false
	}
	ctx.SetMode(first.Mode)
	ctx.PendingLatch = int(first.Mode.LatchFrom())
	return true
}
