package encmode

import "github.com/go-dmtx/dmtx/symbolsize"

// Switcher decides, at the natural boundaries each mode codec calls out at,
// whether the encoder should leave its current mode. A concrete Switcher
// looks ahead over the context's remaining input and reports the verdict;
// it is responsible for calling ctx.SetMode itself when it switches.
// pending is the caller's own count of input values already folded into
// an as-yet-unflushed group (0 at a clean boundary; nonzero mid-group),
// so the Switcher can price abandoning that group correctly instead of
// assuming a fresh start. The mode planner is the production Switcher;
// tests may supply a fixed-point stub or leave it nil to encode
// everything in one mode.
type Switcher interface {
	MaybeSwitchMode(ctx *Context, pending int) bool
}

// Context is the shared state threaded through every mode codec's Encode
// function: the remaining input, the codewords produced so far, the
// current mode, and the symbol size policy that bounds how much room is
// left to fill. It mirrors the encoding-context contract mode codecs are
// written against (eat/rest/push/replace/insert/symbol_size_left/
// maybe_switch_mode/set_ascii_until_end).
type Context struct {
	input   []byte // the full original input, for Backup
	data    []byte // remaining unconsumed input
	Mode    Mode
	codewords []byte
	policy    symbolsize.Policy
	switcher  Switcher

	// PendingLatch, when non-negative (-1 means none), is a latch
	// codeword the driver loop must push before invoking the new mode's
	// Encode function. It is set by a Switcher when it switches modes.
	PendingLatch int
}

// NewContext creates a Context over data, starting in Ascii mode, bounded
// by policy.
func NewContext(data []byte, policy symbolsize.Policy, switcher Switcher) *Context {
	return &Context{
		input:        data,
		data:         data,
		Mode:         Ascii,
		policy:       policy,
		switcher:     switcher,
		PendingLatch: -1,
	}
}

// Eat consumes and returns the next input byte, or ok=false at end of input.
func (c *Context) Eat() (ch byte, ok bool) {
	if len(c.data) == 0 {
		return 0, false
	}
	ch = c.data[0]
	c.data = c.data[1:]
	return ch, true
}

// Backup rewinds the cursor by steps bytes, re-exposing them via Rest/Eat.
func (c *Context) Backup(steps int) {
	offset := (len(c.input) - len(c.data)) - steps
	c.data = c.input[offset:]
}

// Rest returns the remaining unconsumed input.
func (c *Context) Rest() []byte { return c.data }

// Peek returns the byte n positions ahead in Rest, or ok=false past the end.
func (c *Context) Peek(n int) (ch byte, ok bool) {
	if n >= len(c.data) {
		return 0, false
	}
	return c.data[n], true
}

// CharactersLeft returns how many input bytes remain unconsumed.
func (c *Context) CharactersLeft() int { return len(c.data) }

// HasMoreCharacters reports whether any input remains unconsumed.
func (c *Context) HasMoreCharacters() bool { return len(c.data) > 0 }

// Push appends a codeword to the output.
func (c *Context) Push(ch byte) { c.codewords = append(c.codewords, ch) }

// Replace overwrites the codeword at index.
func (c *Context) Replace(index int, ch byte) { c.codewords[index] = ch }

// Insert inserts a codeword at index, shifting later codewords right.
func (c *Context) Insert(index int, ch byte) {
	c.codewords = append(c.codewords, 0)
	copy(c.codewords[index+1:], c.codewords[index:])
	c.codewords[index] = ch
}

// Codewords returns the codewords produced so far.
func (c *Context) Codewords() []byte { return c.codewords }

// SetMode switches the context's current mode without emitting a latch
// codeword (the caller is responsible for that, if any is needed).
func (c *Context) SetMode(m Mode) { c.Mode = m }

// SymbolSizeLeft reports how many data codewords would remain unused if
// extraCodewords more were appended to the current output, given the
// smallest symbol in policy that could still hold that many codewords. It
// reports ok=false if no symbol in policy is that large.
func (c *Context) SymbolSizeLeft(extraCodewords int) (left int, ok bool) {
	sizeUsed := len(c.codewords) + extraCodewords
	d, found := c.policy.Smallest(sizeUsed)
	if !found {
		return 0, false
	}
	return d.Nd - sizeUsed, true
}

// MaybeSwitchMode consults the Switcher, if any, to decide whether to leave
// the current mode at this natural boundary. pending is the current
// mode's own buffered/partial-group state at this call site (0-2 pending
// C40/Text values, 0-3 pending Edifact symbols, the Base256 run's
// data-byte count so far, or always 0 for Ascii and X12, whose call
// sites only occur at clean boundaries). It reports whether a switch
// happened; callers that see true should return from their Encode
// function.
func (c *Context) MaybeSwitchMode(pending int) bool {
	if c.switcher == nil {
		return false
	}
	return c.switcher.MaybeSwitchMode(c, pending)
}

// SetASCIIUntilEnd puts the context into Ascii mode directly, without
// consulting the Switcher and without queuing a latch codeword. Edifact's
// "encode remaining as ASCII with no UNLATCH" end-of-data rule uses this.
// The Ascii codec that then runs still calls MaybeSwitchMode at its own
// boundaries.
func (c *Context) SetASCIIUntilEnd() { c.Mode = Ascii }
