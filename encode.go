package dmtx

import (
	"fmt"

	"github.com/go-dmtx/dmtx/ecc"
	"github.com/go-dmtx/dmtx/encmode"
	"github.com/go-dmtx/dmtx/placement"
	"github.com/go-dmtx/dmtx/planner"
	"github.com/go-dmtx/dmtx/symbolsize"
)

// maxStalledIterations bounds how many driver-loop turns may pass with no
// codeword emitted before the encoder gives up: a mode codec that
// consumes input without ever pushing a codeword, or a Switcher that
// oscillates forever, is an implementation bug rather than a user error.
const maxStalledIterations = 5

// EncodeOptions configures Encode beyond the raw input bytes.
type EncodeOptions struct {
	// Policy restricts which symbol sizes may be chosen. The zero value
	// is invalid; callers pass e.g. symbolsize.AllStandard().
	Policy symbolsize.Policy

	// EnabledModes restricts which encodation modes the planner may use.
	// A nil map enables all six modes.
	EnabledModes map[encmode.Mode]bool

	// ECI, if non-nil, is pushed as a leading Extended Channel
	// Interpretation escape before the message body.
	ECI *uint32

	// UseMacros, if true, detects an ISO/IEC 16022 Annex E macro-05/06
	// envelope around data and replaces it with the corresponding macro
	// codeword plus the enclosed message.
	UseMacros bool
}

// Encode builds a Data Matrix symbol carrying data, per opts.
func Encode(data []byte, opts EncodeOptions) (*DataMatrix, error) {
	if opts.Policy.Empty() {
		return nil, ErrSymbolListEmpty
	}
	if len(data) > opts.Policy.MaxCapacity() {
		return nil, fmt.Errorf("dmtx: %d bytes exceeds policy's %d-byte capacity: %w", len(data), opts.Policy.MaxCapacity(), ErrTooMuchOrIllegalData)
	}

	body := data
	var macroCW byte
	if opts.UseMacros {
		if cw, inner, ok := encmode.DetectMacro(data); ok {
			macroCW, body = cw, inner
		}
	}

	ctx := encmode.NewContext(body, opts.Policy, planner.NewModeSwitcher(opts.EnabledModes))
	if macroCW != 0 {
		ctx.Push(macroCW)
	}
	if opts.ECI != nil {
		encmode.WriteECI(ctx, *opts.ECI)
	}

	if err := driveEncode(ctx); err != nil {
		return nil, err
	}

	descriptor, ok := opts.Policy.Smallest(len(ctx.Codewords()))
	if !ok {
		return nil, fmt.Errorf("dmtx: %d codewords exceeds every policy symbol's capacity: %w", len(ctx.Codewords()), ErrTooMuchOrIllegalData)
	}
	addPadding(ctx, descriptor.Nd)

	dataCodewords := ctx.Codewords()
	ecCodewords := ecc.Encode(dataCodewords, descriptor.Nb, descriptor.Ne)
	codewords := make([]byte, 0, len(dataCodewords)+len(ecCodewords))
	codewords = append(codewords, dataCodewords...)
	codewords = append(codewords, ecCodewords...)

	rows, cols := descriptor.DataRegionSize()
	content := placement.Place(codewords, descriptor.Hc, descriptor.Wc, descriptor.HasPadding)
	bitmap := placement.Compose(content, descriptor.V, descriptor.H_, cols, rows)

	return &DataMatrix{
		Size:      descriptor,
		Codewords: codewords,
		Data:      dataCodewords,
		Bitmap:    bitmap,
	}, nil
}

// driveEncode runs the mode codecs to exhaustion, pushing each pending
// latch codeword before invoking the mode it latches into — this must
// happen in that order so a mode's own position-dependent logic (notably
// Base256's byte randomization) sees the latch already accounted for in
// the codeword stream, exactly as each mode codec's own tests do.
func driveEncode(ctx *encmode.Context) error {
	stalled := 0
	for ctx.HasMoreCharacters() {
		before := len(ctx.Codewords())

		if ctx.PendingLatch >= 0 {
			ctx.Push(byte(ctx.PendingLatch))
			ctx.PendingLatch = -1
		}

		switch ctx.Mode {
		case encmode.Ascii:
			encmode.EncodeASCII(ctx)
		case encmode.C40:
			encmode.EncodeC40(ctx)
		case encmode.Text:
			encmode.EncodeText(ctx)
		case encmode.X12:
			encmode.EncodeX12(ctx)
		case encmode.Edifact:
			encmode.EncodeEdifact(ctx)
		case encmode.Base256:
			encmode.EncodeBase256(ctx)
		}

		if len(ctx.Codewords()) == before {
			stalled++
			if stalled >= maxStalledIterations {
				return fmt.Errorf("dmtx: encoder made no progress across %d iterations: %w", maxStalledIterations, ErrMalfunction)
			}
		} else {
			stalled = 0
		}
	}
	return nil
}

// addPadding fills the remainder of a nd-data-codeword symbol, per
// ISO/IEC 16022 §5.2.10.1: an UNLATCH if not already in Ascii mode, one
// literal PAD codeword, then PAD values randomized by codeword position
// (a distinct 253-state scheme from Base256's 255-state byte randomizer).
func addPadding(ctx *encmode.Context, nd int) {
	sizeLeft := nd - len(ctx.Codewords())
	if sizeLeft == 0 {
		return
	}
	if ctx.Mode != encmode.Ascii {
		ctx.SetMode(encmode.Ascii)
		ctx.Push(encmode.Unlatch)
		sizeLeft--
	}
	if sizeLeft > 0 {
		ctx.Push(encmode.Pad)
		sizeLeft--
	}
	for i := 0; i < sizeLeft; i++ {
		pos := len(ctx.Codewords()) + 1
		pseudoRandom := int((149*pos)%253 + 1)
		tmp := int(encmode.Pad) + pseudoRandom
		if tmp <= 254 {
			ctx.Push(byte(tmp))
		} else {
			ctx.Push(byte(tmp - 254))
		}
	}
}
