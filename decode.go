package dmtx

import (
	"errors"
	"fmt"

	"github.com/go-dmtx/dmtx/bitutil"
	"github.com/go-dmtx/dmtx/charset"
	"github.com/go-dmtx/dmtx/ecc"
	"github.com/go-dmtx/dmtx/encmode"
	"github.com/go-dmtx/dmtx/placement"
	"github.com/go-dmtx/dmtx/symbolsize"
)

// pixelsToBitMatrix packs a row-major boolean pixel buffer of length
// width*height into a bitutil.BitMatrix, the form placement.Decompose and
// placement.Extract operate on.
func pixelsToBitMatrix(pixels []bool, width int) (*bitutil.BitMatrix, error) {
	if width <= 0 || len(pixels)%width != 0 {
		return nil, fmt.Errorf("dmtx: pixel buffer length %d is not a multiple of width %d: %w", len(pixels), width, ErrPixelConversion)
	}
	height := len(pixels) / width
	bm := bitutil.NewBitMatrixWithSize(width, height)
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			if pixels[row+x] {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}

// Decode reads a Data Matrix symbol from a row-major pixel buffer
// (pixels, of length width*height) back into its raw decoded bytes,
// correcting errors via Reed-Solomon and walking the mode codecs'
// decoders from the resulting data codewords. The symbol's (W, H) are
// matched against the full ISO/IEC 16022 + 21471 catalog to recover its
// Descriptor; no separate size hint is needed.
func Decode(pixels []bool, width int) (*Decoded, error) {
	bitmap, err := pixelsToBitMatrix(pixels, width)
	if err != nil {
		return nil, err
	}
	descriptor, ok := symbolsize.ByDimensions(bitmap.Width(), bitmap.Height())
	if !ok {
		return nil, fmt.Errorf("dmtx: %dx%d does not match any cataloged symbol size: %w", bitmap.Width(), bitmap.Height(), ErrPixelConversion)
	}

	rows, cols := descriptor.DataRegionSize()
	content, alignmentOK := placement.Decompose(bitmap, descriptor.V, descriptor.H_, cols, rows)
	if !alignmentOK {
		return nil, fmt.Errorf("dmtx: alignment pattern mismatch: %w", ErrPixelConversion)
	}
	if descriptor.HasPadding && !placement.CheckPadding(content) {
		return nil, fmt.Errorf("dmtx: padding pattern mismatch: %w", ErrPixelConversion)
	}

	codewords := placement.Extract(content, descriptor.TotalCodewords())
	if err := correctErrors(codewords, descriptor); err != nil {
		return nil, err
	}

	data := codewords[:descriptor.Nd]
	bytesOut, ecis, macro, err := encmode.DecodeCodewords(data)
	if err != nil {
		return nil, mapDecodeError(err)
	}
	return &Decoded{Bytes: bytesOut, Macro: macro, ECIs: ecis}, nil
}

func correctErrors(codewords []byte, descriptor *symbolsize.Descriptor) error {
	err := ecc.Decode(codewords, descriptor.Nd, descriptor.Nb, descriptor.Ne)
	switch {
	case err == nil:
		return nil
	case err == ecc.ErrTooManyErrors:
		return fmt.Errorf("dmtx: %w", ErrTooManyErrors)
	case err == ecc.ErrErrorsOutsideRange:
		return fmt.Errorf("dmtx: %w", ErrErrorsOutsideRange)
	default:
		return fmt.Errorf("dmtx: %w", ErrMalfunction)
	}
}

func mapDecodeError(err error) error {
	switch {
	case errors.Is(err, encmode.ErrUnexpectedCharacter):
		return fmt.Errorf("dmtx: %w", ErrUnexpectedCharacter)
	case errors.Is(err, encmode.ErrUnexpectedEnd):
		return fmt.Errorf("dmtx: %w", ErrUnexpectedEnd)
	default:
		return fmt.Errorf("dmtx: %w: %v", ErrNotImplemented, err)
	}
}

// RawBytes returns the decoded bytes unchanged, for callers that have no
// use for ECI-aware text transcoding. It rejects a symbol that carries any
// ECI section, since interpreting Bytes correctly then requires Text.
func (d *Decoded) RawBytes() ([]byte, error) {
	if len(d.ECIs) > 0 {
		return nil, fmt.Errorf("dmtx: %w", ErrECICode)
	}
	return d.Bytes, nil
}

// Text decodes bytes as a UTF-8 string, honoring any ECI sections
// recorded during DecodeCodewords: each section's byte range is
// transcoded through its declared charset, with ISO-8859-1 (ECI 0, the
// implicit default channel) assumed for any bytes before the first
// section.
func (d *Decoded) Text() (string, error) {
	if len(d.ECIs) == 0 {
		eci, err := charset.ByValue(0)
		if err != nil {
			return "", err
		}
		return eci.Decode(d.Bytes)
	}

	var out []byte
	segments := append([]ECISection{{At: 0, Value: 0}}, d.ECIs...)
	for i, seg := range segments {
		end := len(d.Bytes)
		if i+1 < len(segments) {
			end = segments[i+1].At
		}
		if seg.At >= end {
			continue
		}
		eci, err := charset.ByValue(int(seg.Value))
		if err != nil {
			return "", fmt.Errorf("dmtx: %w", ErrNotImplemented)
		}
		decoded, err := eci.Decode(d.Bytes[seg.At:end])
		if err != nil {
			return "", fmt.Errorf("dmtx: %w", ErrCharset)
		}
		out = append(out, []byte(decoded)...)
	}
	return string(out), nil
}
