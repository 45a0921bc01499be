// Package dmtx encodes and decodes Data Matrix (ECC 200) symbols, including
// the ISO/IEC 21471 DMRE rectangular extensions.
package dmtx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the encoder and decoder's error taxonomy. Each is
// wrapped with context via fmt.Errorf("...: %w", ...) at its raise site so
// errors.Is still matches against the sentinel.
var (
	// ErrTooMuchOrIllegalData is returned when the input exceeds the
	// largest symbol capacity the policy offers, or contains bytes no
	// enabled mode can encode.
	ErrTooMuchOrIllegalData = errors.New("dmtx: input too large or contains unencodable data")

	// ErrSymbolListEmpty is returned when a Policy yields no candidate
	// symbol sizes.
	ErrSymbolListEmpty = errors.New("dmtx: symbol size policy is empty")

	// ErrTooManyErrors is returned when a received block's error count
	// exceeds its Reed-Solomon correction capacity.
	ErrTooManyErrors = errors.New("dmtx: too many errors to correct")

	// ErrErrorsOutsideRange is returned when a Chien-search root maps to a
	// position outside the received codeword block.
	ErrErrorsOutsideRange = errors.New("dmtx: corrected error position outside received block")

	// ErrMalfunction is returned when the error-locator polynomial fails
	// its syndrome consistency check.
	ErrMalfunction = errors.New("dmtx: error-correction consistency check failed")

	// ErrUnexpectedCharacter is returned when a codeword is illegal in the
	// decoder's current mode.
	ErrUnexpectedCharacter = errors.New("dmtx: unexpected codeword for current mode")

	// ErrUnexpectedEnd is returned when the codeword stream ends mid-token.
	ErrUnexpectedEnd = errors.New("dmtx: codeword stream ended mid-token")

	// ErrCharset is returned when decoded bytes are invalid under the
	// declared ECI charset.
	ErrCharset = errors.New("dmtx: bytes invalid under declared charset")

	// ErrNotImplemented is returned for recognized but unsupported
	// constructs: FNC1/GS1, Structured Append, or an ECI value outside the
	// supported subset.
	ErrNotImplemented = errors.New("dmtx: construct not implemented")

	// ErrECICode is returned when an ECI section is encountered while the
	// caller asked for a raw-bytes decode.
	ErrECICode = errors.New("dmtx: ECI section encountered during raw-bytes decode")

	// ErrPixelConversion is returned when a candidate bitmap's dimensions,
	// alignment pattern, or padding check fails at decode time.
	ErrPixelConversion = errors.New("dmtx: bitmap failed dimension or alignment validation")
)

// UnexpectedCharacterError carries the decoder state at the point an illegal
// codeword was encountered, for callers that want more than errors.Is.
type UnexpectedCharacterError struct {
	Context string
	Value   byte
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("dmtx: unexpected codeword %d in %s", e.Value, e.Context)
}

func (e *UnexpectedCharacterError) Unwrap() error { return ErrUnexpectedCharacter }

// NotImplementedError names the unsupported construct the decoder gave up
// on (FNC1, Structured Append, or an out-of-range ECI value).
type NotImplementedError struct {
	Reason string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("dmtx: not implemented: %s", e.Reason)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }
